package email

const contactNotificationTemplate = `{{define "contact_notification"}}
<h2>New contact message</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<hr>
<p>{{.Message}}</p>
{{end}}`
