package referrals

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"referral-intake-server/models"
	"referral-intake-server/utils"
)

const (
	msgSuccess       = "Recommandation envoyée avec succès !"
	msgMissingFields = "Veuillez remplir tous les champs obligatoires."
	msgSaveFailed    = "Erreur lors de la sauvegarde."
	msgEmailFailed   = "Erreur lors de l'envoi de l'email."
	msgUnexpected    = "Une erreur inattendue est survenue."
	formTemplate     = "form.html"
	pageTitle        = "Recommandations internes Groupe"
	pageSubtitle     = "Agence Orpi Panazol, Arcades, La Souterraine et Saint-Yrieix"
)

type formPage struct {
	Title      string
	Subtitle   string
	Projects   []models.ProjectType
	ProjectCSS template.CSS
	Form       models.ReferralSubmission
	Success    string
	Error      string
}

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, newFormPage(models.ReferralSubmission{}))
}

func (h *Handler) SubmitReferral(c *gin.Context) {
	var referral models.ReferralSubmission
	if err := c.ShouldBind(&referral); err != nil {
		page := newFormPage(referral)
		page.Error = msgMissingFields

		var validationErr *models.ValidationError
		if errors.As(models.AsValidationError(err), &validationErr) {
			h.logger.Info("referral rejected", zap.Strings("missing", validationErr.Missing))
			c.HTML(http.StatusUnprocessableEntity, formTemplate, page)
			return
		}
		h.logger.Info("unreadable referral form", zap.Error(err))
		c.HTML(http.StatusBadRequest, formTemplate, page)
		return
	}

	out, err := h.service.Submit(c.Request.Context(), referral)
	if err == nil {
		page := newFormPage(models.ReferralSubmission{})
		page.Success = msgSuccess
		c.HTML(http.StatusOK, formTemplate, page)
		return
	}

	// Once the row exists the form is cleared so it is not sent twice.
	page := newFormPage(referral)
	if out.RowAppended {
		page.Form = models.ReferralSubmission{}
	}
	status := http.StatusBadGateway

	var validationErr *models.ValidationError
	var serviceErr *utils.ServiceError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		page.Error = msgMissingFields
	case errors.As(err, &serviceErr) && serviceErr.Service == "email":
		page.Error = msgEmailFailed
	case errors.As(err, &serviceErr):
		page.Error = msgSaveFailed
	default:
		status = http.StatusInternalServerError
		page.Error = msgUnexpected
	}

	c.HTML(status, formTemplate, page)
}

func newFormPage(form models.ReferralSubmission) formPage {
	return formPage{
		Title:      pageTitle,
		Subtitle:   pageSubtitle,
		Projects:   models.ProjectTypes,
		ProjectCSS: projectCSS(),
		Form:       form,
	}
}

// projectCSS colours each dropdown option. The values are compile-time
// constants, hence the template.CSS conversion.
func projectCSS() template.CSS {
	var b strings.Builder
	for _, p := range models.ProjectTypes {
		b.WriteString(`option[value="` + p.Label + `"] { background-color: ` + p.Color + ` !important; color: white !important; }`)
		b.WriteString("\n")
	}
	return template.CSS(b.String())
}
