package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/config"
)

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

type mailer interface {
	Send(form contactForm) error
}

type smtpMailer struct {
	cfg config.SMTP
}

func (m smtpMailer) Send(form contactForm) error {
	if err := m.cfg.Ready(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", form.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Message)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + form.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func (s *server) setupContactRoutes(r *gin.Engine) {
	// HTMX contact form - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.POST("/contact", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in your name, a valid email and a message.",
			})
			return
		}

		if err := s.mailer.Send(form); err != nil {
			log.Printf("Error sending email: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		log.Printf("Contact email sent for %s", form.Email)
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}
