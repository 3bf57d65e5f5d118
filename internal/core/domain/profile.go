package domain

// Profile is the editable part of the user's account settings.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}
