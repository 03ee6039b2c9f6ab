package domain

// CompanyInput is the company sub-object of an upsert request. A resume can
// carry up to two of these: the primary employer and a recruiting
// intermediary. The owner ref is assigned by the workflow at creation and
// never rewritten on update.
type CompanyInput struct {
	CompanyID   UpsertID `json:"companyId"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Street      string   `json:"street"`
	HouseNumber string   `json:"houseNumber"`
	PostalCode  string   `json:"postalCode"`
	IsRecruiter bool     `json:"isRecruiter"`
}
