package scoring

// companyClusters groups companies by competing-product category. Two
// companies in the same cluster sell into the same market, so experience at
// one transfers to the other.
var companyClusters = [][]string{
	// Customer service / support tech
	{"zendesk", "intercom", "freshdesk", "freshworks", "helpscout", "gorgias", "klaviyo"},
	// CRM / sales tech
	{"salesforce", "hubspot", "pipedrive", "close", "outreach", "salesloft", "apollo"},
	// Marketing tech
	{"mailchimp", "constant contact", "sendgrid", "activecampaign", "convertkit", "drip"},
	// Fintech / payments
	{"stripe", "square", "paypal", "adyen", "braintree", "plaid", "robinhood"},
	// Cloud / infrastructure
	{"aws", "azure", "google cloud", "heroku", "vercel", "netlify", "digitalocean"},
	// Development tools
	{"github", "gitlab", "bitbucket", "atlassian", "gitkraken", "sourcetree"},
	// Big consumer tech
	{"google", "facebook", "amazon", "microsoft", "apple", "netflix", "spotify"},
}

// companySimilarity maps each company to the other members of its cluster.
// Built once at init from companyClusters.
var companySimilarity = buildCompanySimilarity()

func buildCompanySimilarity() map[string][]string {
	similarity := make(map[string][]string)
	for _, cluster := range companyClusters {
		for i, anchor := range cluster {
			peers := make([]string, 0, len(cluster)-1)
			for j, peer := range cluster {
				if i != j {
					peers = append(peers, peer)
				}
			}
			similarity[anchor] = peers
		}
	}
	return similarity
}

// companySimilarityScore awards a partial company bonus for same-cluster
// membership: a full-rate bonus when the candidate company appears in the
// hiring company's own cluster list, a reduced bonus when the pair is only
// connected indirectly through another anchor's list.
func companySimilarityScore(hiringCompany, candidateCompany string) float64 {
	if peers, ok := companySimilarity[hiringCompany]; ok {
		for _, peer := range peers {
			if peer == candidateCompany {
				return companyMatchWeight * 0.8
			}
		}
	}
	if _, ok := companySimilarity[candidateCompany]; ok {
		for _, cluster := range companyClusters {
			foundHiring, foundCandidate := false, false
			for _, member := range cluster {
				if member == hiringCompany {
					foundHiring = true
				}
				if member == candidateCompany {
					foundCandidate = true
				}
			}
			if foundHiring && foundCandidate {
				return companyMatchWeight * 0.6
			}
		}
	}
	return 0
}

// relatedRoles lists role pairs considered adjacent enough for partial role
// credit. Keys and values are canonical role names.
var relatedRoles = map[string][]string{
	"payroll specialist":       {"accountant", "financial analyst"},
	"accountant":               {"payroll specialist", "financial analyst"},
	"financial analyst":        {"accountant", "payroll specialist"},
	"software engineer":        {"data scientist", "product manager"},
	"data scientist":           {"software engineer"},
	"product manager":          {"software engineer"},
	"account executive":        {"customer success manager", "marketing manager"},
	"customer success manager": {"account executive", "marketing manager"},
	"marketing manager":        {"account executive", "customer success manager"},
	"sales engineer":           {"solutions architect", "pre-sales engineer", "technical sales"},
	"solutions architect":      {"sales engineer", "pre-sales engineer", "technical sales"},
	"pre-sales engineer":       {"sales engineer", "solutions architect", "technical sales"},
	"technical sales":          {"sales engineer", "solutions architect", "pre-sales engineer"},
	"sdr":                      {"bdr"},
	"bdr":                      {"sdr"},
}

func rolesRelated(targetRole, contactRole string) bool {
	for _, related := range relatedRoles[targetRole] {
		if related == contactRole {
			return true
		}
	}
	return false
}
