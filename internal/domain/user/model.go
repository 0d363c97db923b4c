package user

import "fmt"

// User is a registered pool member. ID is the identity provider's
// subject key and is treated as opaque.
type User struct {
	ID          string
	DisplayName string
	Email       string
}

func (u User) ValidateBasic() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.DisplayName == "" {
		return fmt.Errorf("display name is required")
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}

	return nil
}
