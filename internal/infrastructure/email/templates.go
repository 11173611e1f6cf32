package email

import "fmt"

// Template functions là pure string builders: nhận recipient info,
// trả về subject + HTML body. Không side effect, không I/O.

const baseStyle = `font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;color:#222`

func VerificationEmail(name, verifyLink string) (subject, html string) {
	subject = "Verify your Fashionstore account"
	html = fmt.Sprintf(`<div style="%s">
  <h2>Welcome to Fashionstore, %s!</h2>
  <p>Please confirm your email address to activate your account:</p>
  <p><a href="%s" style="background:#111;color:#fff;padding:12px 24px;text-decoration:none;border-radius:4px">Verify Email</a></p>
  <p>This link expires in 24 hours. If you did not create an account, you can safely ignore this email.</p>
</div>`, baseStyle, name, verifyLink)
	return subject, html
}

func PasswordResetEmail(name, resetLink string) (subject, html string) {
	subject = "Reset your Fashionstore password"
	html = fmt.Sprintf(`<div style="%s">
  <h2>Hi %s,</h2>
  <p>We received a request to reset your password. Click below to choose a new one:</p>
  <p><a href="%s" style="background:#111;color:#fff;padding:12px 24px;text-decoration:none;border-radius:4px">Reset Password</a></p>
  <p>This link expires in 1 hour. If you did not request a reset, no action is needed.</p>
</div>`, baseStyle, name, resetLink)
	return subject, html
}

func WelcomeEmail(name string) (subject, html string) {
	subject = "Welcome to Fashionstore"
	html = fmt.Sprintf(`<div style="%s">
  <h2>You're in, %s!</h2>
  <p>Your email is verified and your account is ready. Browse our latest arrivals and occasion edits.</p>
</div>`, baseStyle, name)
	return subject, html
}

func PasswordChangedEmail(name string) (subject, html string) {
	subject = "Your Fashionstore password was changed"
	html = fmt.Sprintf(`<div style="%s">
  <h2>Hi %s,</h2>
  <p>Your password was just changed. If this wasn't you, please reset your password immediately and contact support.</p>
</div>`, baseStyle, name)
	return subject, html
}

func OrderConfirmationEmail(name, orderID, total string) (subject, html string) {
	subject = fmt.Sprintf("Order %s confirmed", orderID)
	html = fmt.Sprintf(`<div style="%s">
  <h2>Thank you for your order, %s!</h2>
  <p>Order <strong>%s</strong> has been received. Total: <strong>%s</strong>.</p>
  <p>We'll let you know as soon as it ships.</p>
</div>`, baseStyle, name, orderID, total)
	return subject, html
}
