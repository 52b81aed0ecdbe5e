package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderConfirmationData dữ liệu cho template email
type OrderConfirmationData struct {
	OrderCode       string
	CustomerName    string
	Items           string
	TotalAmount     float64
	PaymentMethod   string
	ShippingAddress string
	DetailLink      string
}

// BookingConfirmationData dữ liệu cho email xác nhận lịch spa
type BookingConfirmationData struct {
	BookingCode  string
	CustomerName string
	ServiceName  string
	PetName      string
	BookingDate  string
	StartTime    string
	EndTime      string
	Price        float64
}

// SendOrderConfirmationEmail gửi email xác nhận đơn hàng (async)
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() { // Async để không delay response
		tmplPath := "templates/order_confirmation.html" // Đường dẫn template
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		sendMail(to, "Xác nhận đơn hàng #"+data.OrderCode, body.String())
	}()
}

// SendOrderCancelledEmail gửi email thông báo hủy đơn (async)
func SendOrderCancelledEmail(to string, orderCode string, reason string) {
	go func() {
		body := fmt.Sprintf(
			"<p>Đơn hàng <b>#%s</b> của bạn đã bị hủy.</p><p>Lý do: %s</p>",
			orderCode, reason,
		)
		sendMail(to, "Đơn hàng #"+orderCode+" đã bị hủy", body)
	}()
}

// SendBookingConfirmationEmail gửi email xác nhận lịch spa (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		sendMail(to, "Xác nhận lịch hẹn spa #"+data.BookingCode, body.String())
	}()
}

func sendMail(to string, subject string, htmlBody string) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email: %v", err)
	}
}

// SendPasswordResetEmail gửi email đặt lại mật khẩu (sync, caller quyết định async)
func SendPasswordResetEmail(to string, resetLink string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Đặt lại mật khẩu"
	e.HTML = []byte(fmt.Sprintf(
		"<p>Bạn đã yêu cầu đặt lại mật khẩu.</p><p>Nhấn vào link sau để tiếp tục (hiệu lực 15 phút): <a href=\"%s\">%s</a></p><p>Nếu không phải bạn, vui lòng bỏ qua email này.</p>",
		resetLink, resetLink,
	))

	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
