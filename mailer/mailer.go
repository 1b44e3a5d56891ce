package mailer

import (
	"fmt"
	"log"

	"wms-app/config"

	"gopkg.in/gomail.v2"
)

// SendPickingCompleted notifies the warehouse mailbox that an order finished
// picking. Best effort: callers must not fail the transaction on a mail error.
func SendPickingCompleted(pickingNo, customerName string, totalPicked int) {
	if !config.MailEnabled {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.MailFrom)
	m.SetHeader("To", config.MailFrom)
	m.SetHeader("Subject", fmt.Sprintf("Picking %s completed", pickingNo))
	m.SetBody("text/plain", fmt.Sprintf(
		"Picking order %s for %s is completed. Total picked quantity: %d.",
		pickingNo, customerName, totalPicked))

	d := gomail.NewDialer(config.MailHost, config.MailPort, config.MailUser, config.MailPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Failed to send picking completed mail:", err)
	}
}
