package extraction

// Role detection combines three declarative tables consumed by a single
// generic matcher in detectRole:
//
//   - lexicon title aliases, weighted titleAliasWeight per hit
//   - curated multi-word title patterns, weighted titlePatternWeight per hit
//   - per-role weighted keyword co-occurrence, weighted as listed
//
// Title evidence dominates keyword evidence: an explicit job title phrase in
// the text is far stronger evidence than scattered vocabulary.
const (
	titleAliasWeight   = 3
	titlePatternWeight = 5
)

// titlePatterns maps a role name to the title phrases that identify it
// directly in job text.
var titlePatterns = map[string][]string{
	"sales development representative": {
		"sales development representative", "sdr", "sales development rep",
	},
	"business development representative": {
		"business development representative", "bdr", "business development rep",
	},
	"account executive": {
		"account executive", "enterprise account executive",
	},
	"customer success manager": {
		"customer success manager", "csm", "customer success",
	},
	"software engineer": {
		"software engineer", "developer", "engineer", "programmer",
	},
	"product manager": {
		"product manager", "product owner", "senior product manager", "product lead",
	},
	"data scientist": {
		"data scientist", "machine learning engineer", "ml engineer", "ai engineer",
		"machine learning scientist",
	},
	"marketing manager": {
		"marketing manager", "marketing specialist", "senior marketing manager",
		"marketing lead", "digital marketing manager",
	},
	"payroll specialist": {
		"payroll specialist", "payroll administrator",
	},
	"accountant": {
		"accountant", "senior accountant", "staff accountant",
	},
	"financial analyst": {
		"financial analyst", "finance analyst",
	},
	"solution architect": {
		"solution architect", "solutions architect", "senior solution architect",
		"presales solution architect",
	},
	"solution consultant": {
		"solution consultant", "solutions consultant", "solutions engineer",
		"presales consultant", "technical consultant",
	},
	"data engineer": {
		"data engineer", "big data engineer", "etl developer", "data architect",
	},
	"devops engineer": {
		"devops engineer", "site reliability engineer", "sre",
	},
	"engineering manager": {
		"engineering manager", "tech lead", "technical lead", "lead engineer",
	},
	"business analyst": {
		"business analyst", "business systems analyst", "functional analyst",
		"senior business analyst",
	},
	"data analyst": {
		"data analyst", "business intelligence analyst", "bi analyst",
		"senior data analyst",
	},
	"quality assurance": {
		"qa engineer", "test engineer", "quality assurance engineer", "software tester",
	},
	"research scientist": {
		"research scientist", "applied scientist", "ai researcher",
	},
	"revenue operations manager": {
		"revenue operations manager", "revops manager", "revenue ops manager",
		"sales operations manager",
	},
	"financial planning & analysis manager": {
		"financial planning & analysis manager", "fp&a manager",
		"financial planning manager", "fp&a analyst",
	},
	"strategy manager": {
		"strategy manager", "strategic manager", "business strategy manager",
	},
	"operations manager": {
		"operations manager", "operational manager", "business operations manager",
	},
}

// weightedKeyword pairs a keyword phrase with its evidence weight.
type weightedKeyword struct {
	phrase string
	weight int
}

// roleKeywords is the per-role keyword co-occurrence table. High-weight
// entries are near-unambiguous for the role; weight-1 entries are common
// vocabulary kept cheap to avoid false positives.
var roleKeywords = map[string][]weightedKeyword{
	"sales development representative": {
		{"qualifying leads", 3}, {"prospecting", 3}, {"cold calling", 3}, {"outbound", 3},
		{"lead qualification", 3}, {"lead generation", 3}, {"setting meetings", 3},
		{"sales calls", 2}, {"email outreach", 2}, {"lead nurturing", 2}, {"sales pipeline", 2},
		{"working with account executives", 2}, {"self-starter", 2},
		{"sales", 1}, {"development", 1}, {"representative", 1}, {"leads", 1},
	},
	"account executive": {
		{"quota", 4}, {"booking goals", 4}, {"sales cycle", 4}, {"closing deals", 4},
		{"pipeline management", 4}, {"revenue generation", 4}, {"account plans", 4},
		{"sales methodologies", 4}, {"meddic", 4},
		{"account management", 3}, {"client relationship", 3}, {"customer acquisition", 3},
		{"negotiation", 3}, {"enterprise sales", 3}, {"annual contract value", 3},
		{"sales", 1}, {"account", 1}, {"executive", 1},
	},
	"customer success manager": {
		{"customer success", 3}, {"customer retention", 3}, {"customer health", 3},
		{"success metrics", 3}, {"customer satisfaction", 3}, {"onboarding", 3},
		{"account management", 2}, {"customer experience", 2}, {"customer advocacy", 2},
		{"renewal", 2},
		{"customer", 1}, {"client", 1}, {"success", 1},
	},
	"software engineer": {
		{"coding", 3}, {"programming", 3}, {"backend", 3}, {"frontend", 3},
		{"fullstack", 3}, {"code review", 3}, {"debugging", 3},
		{"software", 2}, {"database", 2}, {"algorithm", 2}, {"architecture", 2},
		{"deployment", 2}, {"infrastructure", 2},
		{"developer", 1}, {"engineer", 1}, {"programmer", 1},
	},
	"data scientist": {
		{"machine learning", 3}, {"artificial intelligence", 3}, {"data science", 3},
		{"statistical analysis", 3}, {"predictive modeling", 3}, {"tensorflow", 3},
		{"pytorch", 3},
		{"python", 2}, {"jupyter", 2}, {"data analysis", 2}, {"data mining", 2},
		{"data", 1}, {"analysis", 1}, {"statistics", 1},
	},
	"product manager": {
		{"product management", 3}, {"product strategy", 3}, {"roadmap", 3},
		{"user stories", 3}, {"feature prioritization", 3}, {"product vision", 3},
		{"agile", 2}, {"scrum", 2}, {"stakeholder management", 2}, {"product lifecycle", 2},
	},
	"marketing manager": {
		{"campaign management", 3}, {"digital marketing", 3}, {"content marketing", 3},
		{"brand management", 3}, {"email marketing", 3}, {"seo", 3},
		{"marketing automation", 2}, {"growth marketing", 2}, {"demand generation", 2},
		{"campaign", 1}, {"brand", 1}, {"advertising", 1},
	},
	"payroll specialist": {
		{"payroll", 3}, {"payroll processing", 3}, {"tax compliance", 3},
		{"benefits administration", 3}, {"payroll reconciliation", 3},
		{"human resources", 2}, {"compensation", 2},
		{"benefits", 1}, {"tax", 1},
	},
	"accountant": {
		{"accounting", 3}, {"general ledger", 3}, {"journal entries", 3},
		{"reconciliation", 3}, {"tax preparation", 3}, {"audit", 3},
		{"bookkeeping", 3}, {"financial statements", 3},
		{"compliance", 2}, {"cost accounting", 2},
		{"financial", 1}, {"reporting", 1}, {"ledger", 1},
	},
	"financial analyst": {
		{"financial analysis", 3}, {"financial modeling", 3}, {"budget analysis", 3},
		{"financial forecasting", 3}, {"financial reporting", 3},
		{"budget", 2}, {"forecasting", 2}, {"modeling", 2},
		{"financial", 1}, {"finance", 1},
	},
	"solution architect": {
		{"solution design", 3}, {"technical architecture", 3}, {"system architecture", 3},
		{"presales", 3}, {"technical sales", 3}, {"solution consulting", 3},
		{"integration", 2}, {"technical consulting", 2}, {"professional services", 2},
		{"technical", 1}, {"design", 1}, {"consulting", 1},
	},
	"solution consultant": {
		{"demo", 3}, {"proof of concept", 3}, {"technical presentation", 3},
		{"technical demonstration", 2}, {"customer requirements", 2}, {"presales", 2},
		{"consulting", 1}, {"presentation", 1},
	},
	"data engineer": {
		{"etl", 3}, {"data pipeline", 3}, {"data warehouse", 3}, {"big data", 3},
		{"data infrastructure", 3}, {"data modeling", 3},
		{"data platform", 2}, {"data lake", 2}, {"data quality", 2},
		{"data", 1}, {"pipeline", 1},
	},
	"devops engineer": {
		{"ci/cd", 3}, {"continuous integration", 3}, {"continuous deployment", 3},
		{"infrastructure as code", 3}, {"kubernetes", 3}, {"docker", 3},
		{"automation", 2}, {"monitoring", 2}, {"cloud infrastructure", 2},
		{"operations", 1}, {"infrastructure", 1},
	},
	"engineering manager": {
		{"engineering leadership", 3}, {"team leadership", 3}, {"technical leadership", 3},
		{"engineering team", 3},
		{"team management", 2}, {"mentoring", 2}, {"engineering strategy", 2},
		{"engineering", 1}, {"leadership", 1},
	},
	"business analyst": {
		{"requirements gathering", 3}, {"business requirements", 3},
		{"functional requirements", 3}, {"process analysis", 3}, {"business process", 3},
		{"process mapping", 2}, {"documentation", 2},
		{"business", 1}, {"requirements", 1},
	},
	"data analyst": {
		{"business intelligence", 3}, {"data visualization", 3}, {"sql", 3},
		{"tableau", 3}, {"power bi", 3},
		{"analytics", 2}, {"dashboard", 2}, {"data insights", 2},
		{"data", 1}, {"reporting", 1},
	},
	"quality assurance": {
		{"software testing", 3}, {"test automation", 3}, {"manual testing", 3},
		{"test cases", 3}, {"bug tracking", 3}, {"quality control", 3},
		{"test planning", 2}, {"defect tracking", 2},
		{"testing", 1}, {"quality", 1},
	},
	"research scientist": {
		{"scientific research", 3}, {"research methodology", 3},
		{"algorithm development", 3}, {"machine learning", 3},
		{"research paper", 2}, {"scientific", 2},
		{"research", 1}, {"scientist", 1},
	},
	"revenue operations manager": {
		{"revenue operations", 3}, {"revenue optimization", 3}, {"revenue analytics", 3},
		{"sales enablement", 3}, {"revenue strategy", 3},
		{"revenue management", 2}, {"sales analytics", 2},
		{"revenue", 1}, {"operations", 1},
	},
	"financial planning & analysis manager": {
		{"financial planning", 3}, {"budgeting", 3}, {"variance analysis", 3},
		{"financial planning & analysis", 3},
		{"finance", 2}, {"forecast", 2}, {"planning", 2},
		{"plan", 1}, {"analyze", 1},
	},
	"strategy manager": {
		{"business strategy", 3}, {"strategic planning", 3}, {"strategic initiatives", 3},
		{"corporate strategy", 3},
		{"strategic", 2}, {"initiatives", 2},
		{"strategy", 1}, {"plan", 1},
	},
	"operations manager": {
		{"business operations", 3}, {"operational excellence", 3},
		{"process improvement", 3}, {"operational strategy", 3},
		{"operational", 2}, {"process", 2}, {"improvement", 2},
		{"operations", 1},
	},
}

// suggestionRule maps scattered vocabulary to a role suggestion, used only
// when detection confidence is too low to assert a single answer.
type suggestionRule struct {
	role     string
	keywords []string
}

var suggestionRules = []suggestionRule{
	{"account executive", []string{"sales", "account", "revenue", "quota"}},
	{"customer success manager", []string{"customer", "client", "success", "support"}},
	{"marketing manager", []string{"marketing", "campaign", "brand", "lead generation"}},
	{"product manager", []string{"product", "roadmap", "strategy", "agile"}},
	{"software engineer", []string{"software", "development", "coding", "engineering"}},
	{"data scientist", []string{"data", "analysis", "machine learning", "statistics"}},
	{"payroll specialist", []string{"payroll", "hr", "compensation", "benefits"}},
	{"accountant", []string{"accounting", "financial", "bookkeeping", "audit"}},
	{"solution architect", []string{"solution architect", "solutions architect", "technical architecture", "presales"}},
	{"solution consultant", []string{"solution consultant", "solutions consultant", "presales consultant"}},
	{"data engineer", []string{"data engineer", "etl", "data pipeline", "data warehouse"}},
	{"devops engineer", []string{"devops", "site reliability engineer", "sre", "ci/cd"}},
}
