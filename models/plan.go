package models

// PackageType identifies a pricing tier in payment payloads.
type PackageType string

const (
	PackageStarter PackageType = "starter"
	PackageSilver  PackageType = "silver"
	PackageGold    PackageType = "gold"
)

// Valid reports whether p is one of the three known tiers.
func (p PackageType) Valid() bool {
	switch p {
	case PackageStarter, PackageSilver, PackageGold:
		return true
	}
	return false
}

// PricingPlan is a fixed pricing tier. Each plan carries its own package
// identifier so price strings never have to be reverse-mapped to tiers.
type PricingPlan struct {
	Title       string      `json:"title"`
	Price       int         `json:"price"` // whole rupees
	Features    []string    `json:"features"`
	IsPopular   bool        `json:"is_popular"`
	PackageType PackageType `json:"package_type"`
}

// Plans is the static tier catalogue, defined at build time.
var Plans = []PricingPlan{
	{
		Title:       "Career Discovery",
		Price:       999,
		PackageType: PackageStarter,
		Features: []string{
			"1:1 counselling session (45 min)",
			"Psychometric assessment",
			"Career report with top 3 paths",
		},
	},
	{
		Title:       "University Admission",
		Price:       4999,
		PackageType: PackageSilver,
		IsPopular:   true,
		Features: []string{
			"Everything in Career Discovery",
			"University shortlisting (up to 8)",
			"Application and SOP review",
			"2 follow-up sessions",
		},
	},
	{
		Title:       "Complete Counselling",
		Price:       9999,
		PackageType: PackageGold,
		Features: []string{
			"Everything in University Admission",
			"Unlimited sessions for 6 months",
			"Scholarship and visa guidance",
			"Parent counselling session",
		},
	},
}

// PlanByPackage returns the plan for the given package type, or nil.
func PlanByPackage(p PackageType) *PricingPlan {
	for i := range Plans {
		if Plans[i].PackageType == p {
			return &Plans[i]
		}
	}
	return nil
}

// PlanByPrice returns the plan priced at exactly price rupees, or nil.
func PlanByPrice(price int) *PricingPlan {
	for i := range Plans {
		if Plans[i].Price == price {
			return &Plans[i]
		}
	}
	return nil
}
