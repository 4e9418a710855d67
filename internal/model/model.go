package model

// UnnamedContact is the display name used when a card has no FN property.
const UnnamedContact = "Unnamed Contact"

// Record is one parsed business card.
//
// ID is the 0-based position of the card in the file it was loaded from. It is
// assigned once at parse time and never changes while the card is displayed in
// a different order.
type Record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Raw is the reconstructed card text, BEGIN:VCARD through END:VCARD, with
	// "\n" line endings. It is exported unmodified.
	Raw string `json:"raw"`
}
