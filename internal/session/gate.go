package session

// Gate limits how many analyses a session may run. The count lives only in
// memory and resets with the process.
type Gate struct {
	Limit int
}

// NewGate creates a gate allowing limit analyses.
func NewGate(limit int) Gate {
	if limit < 0 {
		limit = 0
	}
	return Gate{Limit: limit}
}

// CanAnalyze reports whether another analysis is allowed after count successes.
func (g Gate) CanAnalyze(count int) bool {
	return count < g.Limit
}

// Remaining returns how many analyses are left after count successes.
func (g Gate) Remaining(count int) int {
	if count >= g.Limit {
		return 0
	}
	return g.Limit - count
}

// Plan describes a subscription tier shown on the upgrade screen.
type Plan struct {
	Name      string
	Price     string
	Period    string
	Features  []string
	Suggested bool
}

// Plans are the static tiers offered when the free limit is reached.
var Plans = []Plan{
	{
		Name:  "Free Plan",
		Price: "$0",
		Features: []string{
			"2 contracts/month",
			"Basic pattern matching",
			"Simple risk dashboard",
		},
	},
	{
		Name:      "Pro Plan",
		Price:     "$79",
		Period:    "/month",
		Suggested: true,
		Features: []string{
			"Unlimited contracts",
			"AI-powered analysis (GPT-4, Gemini, Claude)",
			"Legal database verification",
			"Detailed risk scoring",
			"Email notifications",
			"Analysis history",
			"Priority support",
		},
	},
}
