package service

import (
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
)

// ValidateRecipients partitions a raw recipient list into normalized valid
// recipients and itemized invalid entries. Every input row lands in exactly
// one of the two partitions. Duplicate phone numbers pass through; dedup is
// the store's concern.
func ValidateRecipients(raw []RawRecipient) ([]RawRecipient, []InvalidRecipient) {
	valid := make([]RawRecipient, 0, len(raw))
	var invalid []InvalidRecipient

	for i, recipient := range raw {
		if recipient.PhoneNumber == "" {
			invalid = append(invalid, InvalidRecipient{
				Index:  i,
				Reason: "missing phone number",
			})
			continue
		}

		cleaned := smsprovider.FormatPhoneNumber(recipient.PhoneNumber)
		if !smsprovider.IsValidPhoneNumber(cleaned) {
			invalid = append(invalid, InvalidRecipient{
				Index:              i,
				PhoneNumber:        recipient.PhoneNumber,
				CleanedPhoneNumber: cleaned,
				Reason:             "invalid phone number format",
			})
			continue
		}

		valid = append(valid, RawRecipient{
			PhoneNumber: cleaned,
			FirstName:   recipient.FirstName,
			LastName:    recipient.LastName,
		})
	}

	return valid, invalid
}
