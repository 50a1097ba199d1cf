package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"member_saved":   "Cadastro realizado com sucesso! Seja bem-vindo(a) à nossa comunidade!",
	"saved":          "Salvo.",
	"deleted":        "Excluído.",
	"deactivated":    "Horário desativado.",
	"reactivated":    "Horário reativado.",
	"hero_set":       "Imagem definida como destaque.",
	"pastor_saved":   "Dados do pastor atualizados.",
	"password_saved": "Senha alterada com sucesso.",
	"toggle_on":      "Inscrições abertas.",
	"toggle_off":     "Inscrições encerradas.",
	"registered":     "Inscrição realizada! Escaneie o QR Code para pagamento.",
	"uploaded":       "Imagem enviada.",
	"config_saved":   "Informações da igreja atualizadas.",
}

var errText = map[string]string{
	"missing":           "Por favor, preencha todos os campos obrigatórios.",
	"invalid_year":      "Digite um ano válido entre 1900 e o ano atual.",
	"invalid_date":      "Data de nascimento inválida.",
	"invalid_choice":    "Opção inválida.",
	"invalid_form":      "Verifique os dados informados e tente novamente.",
	"closed":            "As inscrições estão encerradas no momento.",
	"deadline":          "O prazo de inscrição já passou.",
	"login_failed":      "Usuário ou senha incorretos.",
	"password_mismatch": "A confirmação não confere com a nova senha.",
	"password_short":    "A nova senha deve ter pelo menos 4 caracteres.",
	"wrong_password":    "Senha atual incorreta.",
	"upload_failed":     "Falha ao enviar a imagem. Tente novamente.",
	"db":                "Ocorreu um erro ao processar a operação. Tente novamente.",
	"not_found":         "Registro não encontrado.",
}

// MakeFlash builds a Flash from the ?ok= / ?error= query keys, falling back
// to raw text for unknown keys.
func MakeFlash(r *http.Request) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		if t, ok := errText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		if t, ok := okText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}
	return nil
}
