package email

import "fmt"

// WelcomeEmailTemplate renders the HTML body for the welcome email
func WelcomeEmailTemplate(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 24px; }
    .footer { color: #888; font-size: 12px; margin-top: 32px; }
  </style>
</head>
<body>
  <div class="container">
    <h2>Welcome, %s!</h2>
    <p>Your Marketplace account is ready. You can now sign in, manage your
    delivery addresses and start browsing the catalog.</p>
    <p>If you did not create this account, you can safely ignore this email.</p>
    <div class="footer">Marketplace — this is an automated message, please do not reply.</div>
  </div>
</body>
</html>`, name)
}
