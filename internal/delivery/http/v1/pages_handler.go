package v1

import (
	"errors"
	"net/http"

	"go-portfolio-site/internal/domain"
	"go-portfolio-site/internal/usecase"
	"go-portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PagesHandler renders the server-side pages from the resume content store.
type PagesHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewPagesHandler(r *gin.Engine, resumeUC domain.ResumeUsecase) {
	handler := &PagesHandler{
		resumeUC: resumeUC,
	}

	r.GET("/", handler.Home)
	r.GET("/about", handler.About)
	r.GET("/experience", handler.Experience)
	r.GET("/skills", handler.Skills)
	r.GET("/projects", handler.Projects)
	r.GET("/projects/:slug", handler.ProjectDetail)
	r.GET("/contact", handler.Contact)
}

func (h *PagesHandler) render(c *gin.Context, tmpl string, data gin.H) {
	resume, err := h.resumeUC.GetResume()
	if err != nil {
		logger.Log.Error("failed to load resume content", "error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Something went wrong",
			"message": "The page could not be rendered. Please try again later.",
		})
		return
	}
	data["profile"] = resume.Profile
	data["resume"] = resume
	c.HTML(http.StatusOK, tmpl, data)
}

func (h *PagesHandler) Home(c *gin.Context) {
	h.render(c, "index.html", gin.H{"title": "Home"})
}

func (h *PagesHandler) About(c *gin.Context) {
	h.render(c, "about.html", gin.H{"title": "About"})
}

func (h *PagesHandler) Experience(c *gin.Context) {
	h.render(c, "experience.html", gin.H{"title": "Experience"})
}

func (h *PagesHandler) Skills(c *gin.Context) {
	skills, err := h.resumeUC.GetAllSkills()
	if err != nil {
		skills = nil
	}
	h.render(c, "skills.html", gin.H{"title": "Skills", "skills": skills})
}

func (h *PagesHandler) Projects(c *gin.Context) {
	h.render(c, "projects.html", gin.H{"title": "Projects"})
}

func (h *PagesHandler) ProjectDetail(c *gin.Context) {
	project, err := h.resumeUC.GetProjectBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"title":   "Not found",
				"message": "No project lives at this address.",
			})
			return
		}
		logger.Log.Error("failed to load project", "slug", c.Param("slug"), "error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title":   "Something went wrong",
			"message": "The page could not be rendered. Please try again later.",
		})
		return
	}
	h.render(c, "project.html", gin.H{"title": project.Name, "project": project})
}

func (h *PagesHandler) Contact(c *gin.Context) {
	h.render(c, "contact.html", gin.H{"title": "Contact"})
}
