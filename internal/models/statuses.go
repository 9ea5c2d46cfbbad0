package models

type AccountRole string
type IdeaVisibility string

const (
	AccountRoleIndividual AccountRole = "individual"
	AccountRoleCompany    AccountRole = "company"

	IdeaVisibilityPublic  IdeaVisibility = "public"
	IdeaVisibilityPrivate IdeaVisibility = "private"
)

// Industries and company sizes offered on the company signup form.
var Industries = []string{
	"Agriculture", "Automotive", "Banking", "Construction", "Consumer Goods",
	"Education", "Energy", "Entertainment", "Finance", "Healthcare",
	"Hospitality", "Information Technology", "Insurance", "Logistics",
	"Manufacturing", "Media", "Pharmaceuticals", "Real Estate", "Retail",
	"Telecommunications", "Transportation", "Utilities", "Other",
}

var CompanySizes = []string{
	"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+",
}
