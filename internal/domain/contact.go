package domain

// ContactInput is a contact sub-object of an upsert request. A contact only
// exists relative to a company: it is persisted with the company id resolved
// in the same transaction, never with an id taken from the client.
type ContactInput struct {
	ContactID  UpsertID `json:"contactId"`
	FirstName  string   `json:"vorname"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Salutation string   `json:"anrede"`
	Title      string   `json:"title"`
	NameSuffix string   `json:"zusatzname"`
	Phone      string   `json:"phone"`
	Mobile     string   `json:"mobile"`
}
