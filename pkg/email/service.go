package email

var GlobalEmailService *EmailService

func InitEmailService(apiKey, adminTo string) error {
	service, err := NewEmailService(apiKey, adminTo)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
