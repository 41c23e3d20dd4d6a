package schedule

// Audience-group layout of the promotion: four quarter groups crossed with
// three third groups, each quarter belonging to one half of the promotion.
var (
	QuarterGroups = []string{"A", "B", "C", "D"}
	ThirdGroups   = []string{"alpha", "beta", "gamma"}
	HalfOfQuarter = map[string]string{
		"A": "1/2",
		"B": "1/2",
		"C": "2/2",
		"D": "2/2",
	}
)

// WholePromotion is the group value of events every student attends.
const WholePromotion = "Promotion entière"
