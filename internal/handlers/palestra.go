package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
	svc "github.com/adtc/araporanga/internal/services"
)

// PalestraForm renders the couples'-retreat registration form, or the
// closed-registrations notice when the toggle is off or no lecture is
// active.
func PalestraForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !svc.LectureRegistrationsEnabled() {
			render(w, t, "palestra_closed.tmpl", map[string]any{
				"Title": "Inscrições Encerradas",
				"Info":  churchInfo(),
			})
			return
		}
		lecture, err := svc.ActiveLecture()
		if err != nil {
			render(w, t, "palestra_closed.tmpl", map[string]any{
				"Title": "Inscrições Encerradas",
				"Info":  churchInfo(),
			})
			return
		}
		price := lecture.Price
		if price <= 0 {
			price = svc.DefaultLecturePrice
		}
		render(w, t, "palestra.tmpl", map[string]any{
			"Title":   "Inscrição Palestra de Casais",
			"Info":    churchInfo(),
			"Lecture": lecture,
			"Price":   price,
			"Flash":   MakeFlash(r),
		})
	}
}

// PalestraSubmit validates the couple data, records the registration, and
// hands off to the payment page. The enabled toggle is re-checked here so a
// form left open past a mid-session toggle cannot submit.
func PalestraSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := svc.CoupleInput{
		HusbandName:  r.FormValue("husband_name"),
		HusbandPhone: r.FormValue("husband_phone"),
		HusbandCPF:   r.FormValue("husband_cpf"),
		HusbandEmail: r.FormValue("husband_email"),
		WifeName:     r.FormValue("wife_name"),
		WifePhone:    r.FormValue("wife_phone"),
		WifeCPF:      r.FormValue("wife_cpf"),
		WifeEmail:    r.FormValue("wife_email"),
	}

	reg, err := svc.RegisterCouple(in, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrRegistrationsClosed):
			http.Redirect(w, r, "/inscricao-palestra?error=closed", http.StatusSeeOther)
		case errors.Is(err, svc.ErrDeadlinePassed):
			http.Redirect(w, r, "/inscricao-palestra?error=deadline", http.StatusSeeOther)
		default:
			http.Redirect(w, r, "/inscricao-palestra?error=invalid_form", http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, "/inscricao-palestra/pagamento?reg="+url.QueryEscape(reg.PixTxID)+"&ok=registered", http.StatusSeeOther)
}

// PalestraPayment shows the QR code, the copy-paste payload, and the
// WhatsApp handoff for the proof of payment.
func PalestraPayment(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txid := r.URL.Query().Get("reg")
		var reg models.LectureRegistration
		if err := db.Conn().Where("pix_tx_id = ?", txid).First(&reg).Error; err != nil {
			http.NotFound(w, r)
			return
		}
		render(w, t, "palestra_pagamento.tmpl", map[string]any{
			"Title":        "Pagamento PIX",
			"Info":         churchInfo(),
			"Registration": reg,
			"Receiver":     config.C.PixReceiverName,
			"PixKey":       config.C.PixKey,
			"WhatsAppURL":  whatsAppURL(),
			"Flash":        MakeFlash(r),
		})
	}
}

// PixQR serves the registration's payment payload as a QR PNG.
func PixQR(w http.ResponseWriter, r *http.Request) {
	txid := chi.URLParam(r, "txid")
	if txid == "" {
		http.NotFound(w, r)
		return
	}
	var reg models.LectureRegistration
	if err := db.Conn().Where("pix_tx_id = ?", txid).First(&reg).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(reg.PixPayload, qrcode.Medium, 300)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func whatsAppURL() string {
	msg := "Olá! Realizei a inscrição para a Palestra de Casais e gostaria de enviar o comprovante de pagamento."
	return "https://wa.me/" + config.C.WhatsAppNumber + "?text=" + url.QueryEscape(msg)
}
