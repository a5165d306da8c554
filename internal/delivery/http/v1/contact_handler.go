package v1

import (
	"errors"
	"net/http"

	"go-portfolio-site/internal/delivery/http/response"
	"go-portfolio-site/internal/domain"
	"go-portfolio-site/internal/usecase"
	"go-portfolio-site/pkg/apperror"
	"go-portfolio-site/pkg/mail"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the site operator by email.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Success
// @Failure      400      {object}  response.Failure
// @Failure      500      {object}  response.Failure
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.Error(apperror.BadRequest(vErr.Message))
		case errors.Is(err, mail.ErrSendFailed):
			// Provider detail is logged by the error middleware, never echoed
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err))
		default:
			c.Error(apperror.Internal(err))
		}
		return
	}

	response.OK(c, http.StatusOK, "Email sent successfully", result.Receipt)
}
