package lead

// Plan is a selectable subscription tier
type Plan string

const (
	PlanStarter    Plan = "Starter"
	PlanGrowth     Plan = "Growth"
	PlanEnterprise Plan = "Enterprise"
)

// PlanInfo describes a plan option in the form's dropdown
type PlanInfo struct {
	Plan     Plan   `json:"plan"`
	Audience string `json:"audience"`
}

var plans = []PlanInfo{
	{Plan: PlanStarter, Audience: "Solo Doctors"},
	{Plan: PlanGrowth, Audience: "Small Clinics"},
	{Plan: PlanEnterprise, Audience: "Hospitals"},
}

// Plans returns the plan catalog in dropdown order
func Plans() []PlanInfo {
	out := make([]PlanInfo, len(plans))
	copy(out, plans)
	return out
}

// IsPlan reports whether s names one of the catalog plans
func IsPlan(s string) bool {
	for _, p := range plans {
		if string(p.Plan) == s {
			return true
		}
	}
	return false
}

// Option renders the dropdown caption, e.g. "Growth | Small Clinics"
func (p PlanInfo) Option() string {
	return string(p.Plan) + " | " + p.Audience
}
