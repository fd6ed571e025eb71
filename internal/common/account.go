package common

// TwitterAccount holds credentials of a scraping account.
type TwitterAccount struct {
	Login        string `json:"login"`
	AccessToken  string `json:"access_token"`
	Confirmation string `json:"confirmation,omitempty"`
}
