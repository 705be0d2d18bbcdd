package lead

// Source records how a lead entered the system. Source quality is a scoring
// input: referrals close far more often than walk-ins.
type Source string

const (
	SourceWebsite  Source = "WEBSITE"
	SourcePhone    Source = "PHONE"
	SourceWalkIn   Source = "WALKIN"
	SourceReferral Source = "REFERRAL"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceWebsite, SourcePhone, SourceWalkIn, SourceReferral:
		return true
	}
	return false
}

func (s Source) String() string {
	return string(s)
}
