package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeEmail builds the job sent after a successful registration.
func WelcomeEmail(to, name string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Blog Platform",
		Text: "Hi " + name + ",\n\n" +
			"Your account has been created. Log in to start writing posts.\n",
	}
}
