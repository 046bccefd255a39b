package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/jonathan/resume-builder/internal/formdata"
	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/web"
)

// maxFormBytes bounds a submitted form body.
const maxFormBytes = 1 << 20

const sessionTooLargeWarning = "This resume is too large to keep between requests; " +
	"template switching and downloads will not be available."

// handleIndex serves the form, prefilled from the session when there is one
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	form, err := web.NewIndexForm(s.sample)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to load form: %w", err))
		return
	}

	if resume, err := s.sessions.Load(r); err == nil {
		form.Fill(resume.ToProfile())
		form.SelectOption(formsync.IDTemplateChoice, resume.TemplateChoice)
	} else {
		form.Fill(&types.Profile{})
		form.SelectOption(formsync.IDTemplateChoice, s.defaultTemplate)
	}

	s.writeForm(w, r, form)
}

// handleForm applies one form control (load sample, add, remove) to the
// submitted draft and returns the re-synchronized form
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if err := s.parseForm(w, r); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	form, err := web.NewIndexForm(s.sample)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to load form: %w", err))
		return
	}

	form.Restore(formdata.ParseProfile(r.PostForm))
	form.SelectOption(formsync.IDTemplateChoice, formdata.TemplateChoice(r.PostForm))

	action := r.PostForm.Get("action")
	if !form.Apply(action) {
		s.log(r).WithField("action", action).Debug("form action had no effect")
	}

	s.writeForm(w, r, form)
}

// handleGenerate builds the resume from the submitted form, stores it in the
// session and renders the preview
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := s.parseForm(w, r); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	choice := formdata.TemplateChoice(r.PostForm)
	if !rendering.HasTemplate(choice) {
		s.errorResponse(w, r, fmt.Errorf("%w: %s", rendering.ErrUnknownTemplate, choice))
		return
	}

	resume := formdata.Build(formdata.ParseProfile(r.PostForm), choice)
	s.renderPreview(w, r, resume)
}

// handleUpdateTemplate re-renders the session resume with another template
func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.parseForm(w, r); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	resume, err := s.sessions.Load(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	choice := formdata.TemplateChoice(r.PostForm)
	if !rendering.HasTemplate(choice) {
		s.errorResponse(w, r, fmt.Errorf("%w: %s", rendering.ErrUnknownTemplate, choice))
		return
	}

	resume.TemplateChoice = choice
	s.renderPreview(w, r, resume)
}

// handleDownload serves the session resume as an attachment
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	resume, err := s.sessions.Load(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	fileType := r.PathValue("file_type")
	if fileType != "html" && fileType != "tex" && fileType != "pdf" {
		s.errorResponse(w, r, &ErrUnknownFileType{FileType: fileType})
		return
	}

	choice := resume.TemplateChoice
	if !rendering.HasTemplate(choice) {
		choice = s.defaultTemplate
	}

	var (
		body        []byte
		contentType string
	)
	switch fileType {
	case "html":
		out, err := s.renderer.RenderFormat(resume, choice, rendering.FormatHTML)
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		body, contentType = []byte(out), "text/html; charset=utf-8"
	case "tex":
		out, err := s.renderer.RenderFormat(resume, choice, rendering.FormatLaTeX)
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		body, contentType = []byte(out), "application/x-tex; charset=utf-8"
	case "pdf":
		if !s.pdfEnabled {
			s.errorResponse(w, r, &ErrPDFDisabled{})
			return
		}
		out, err := s.renderer.RenderFormat(resume, choice, rendering.FormatHTML)
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		body, err = s.pdf(r.Context(), out, s.pdfTimeout)
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="resume_%s.%s"`, choice, fileType))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log(r).WithError(err).Warn("Error writing download")
	}
}

// handleSample returns the sample profile as JSON
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, s.sample.Clone())
}

// handleStylesheet serves the shared stylesheet
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	css, err := web.ReadPage(web.Stylesheet)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(css)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// renderPreview renders both documents, stores the resume in the session and
// writes the preview page
func (s *Server) renderPreview(w http.ResponseWriter, r *http.Request, resume *types.Resume) {
	docs, err := s.renderer.Render(r.Context(), resume, resume.TemplateChoice)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	warning := ""
	if err := s.sessions.Save(w, resume); err != nil {
		if !errors.Is(err, session.ErrTooLarge) {
			s.errorResponse(w, r, err)
			return
		}
		s.log(r).WithError(err).Warn("resume not stored in session")
		s.sessions.Clear(w)
		warning = sessionTooLargeWarning
	}

	page, err := s.pages.Execute(web.PreviewPage, pongo2.Context{
		"warning":         warning,
		"choices":         rendering.Choices(),
		"template_choice": docs.Template,
		"pdf_enabled":     s.pdfEnabled,
		"html_content":    docs.HTML,
		"latex_content":   docs.LaTeX,
	})
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.htmlResponse(w, r, page)
}

func (s *Server) writeForm(w http.ResponseWriter, r *http.Request, form *formsync.Form) {
	form.IndexControls()
	page, err := form.HTML()
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to serialize form: %w", err))
		return
	}
	s.htmlResponse(w, r, page)
}

func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return &ErrBadForm{Cause: err}
	}
	return nil
}
