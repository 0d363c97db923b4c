package golfer

import "fmt"

// Golfer mirrors the data provider's player record. ID is the
// provider's player key.
type Golfer struct {
	ID   string
	Name string
}

func (g Golfer) ValidateBasic() error {
	if g.ID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("golfer name is required")
	}

	return nil
}
