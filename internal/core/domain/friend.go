package domain

// Friend is a named counterparty belonging to a single user. The link is
// directed: user A's row for friend B is independent of anything B stores.
type Friend struct {
	FriendID    string  `json:"friendID"` // Primary Key (UUID)
	UserID      string  `json:"userID"`   // FK -> User.userID (Not Null)
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	AvatarURL   *string `json:"avatarURL,omitempty"`
	IsOnline    bool    `json:"isOnline"`
	AuditFields
}
