package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Aanishnithin07/Schedulyze/internal/planfile"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

const maxBodyBytes = 1 << 20

// newRequestValidator builds the struct validator used on request bodies.
// Field names in error details come from the json tags, so they match what
// the client actually sent.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeDocument reads and shape-checks a plan document request body.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*planfile.Document, *model.Error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var doc planfile.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, model.NewValidationError("invalid JSON body: " + err.Error())
	}
	if apiErr := s.validateDocument(&doc); apiErr != nil {
		return nil, apiErr
	}
	return &doc, nil
}

// validateDocument runs tag-level validation and folds failures into the
// engine's error taxonomy: settings fields report INVALID_SETTINGS, subject
// fields INVALID_SUBJECT, anything else VALIDATION_ERROR. Settings win when
// both are bad, matching the engine's validation order.
func (s *Server) validateDocument(doc *planfile.Document) *model.Error {
	err := s.validate.Struct(doc)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		s.logger.Error("request validation failed", "error", err)
		return model.NewInternalError("request validation failed")
	}

	var settingsErrs, subjectErrs, requestErrs []model.FieldError
	for _, vErr := range vErrs {
		fe := model.FieldError{Field: fieldPath(vErr), Message: validationMessage(vErr)}
		switch {
		case strings.HasPrefix(fe.Field, "settings"):
			settingsErrs = append(settingsErrs, fe)
		case strings.HasPrefix(fe.Field, "subjects"):
			subjectErrs = append(subjectErrs, fe)
		default:
			requestErrs = append(requestErrs, fe)
		}
	}
	switch {
	case len(settingsErrs) > 0:
		return model.NewInvalidSettingsError(settingsErrs...)
	case len(subjectErrs) > 0:
		return model.NewInvalidSubjectError(subjectErrs...)
	default:
		return model.NewValidationError("request body is invalid", requestErrs...)
	}
}

// fieldPath strips the root struct name from the validator namespace, e.g.
// "Document.subjects[1].deadline" becomes "subjects[1].deadline".
func fieldPath(vErr validator.FieldError) string {
	ns := vErr.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(vErr validator.FieldError) string {
	switch vErr.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", vErr.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", vErr.Param())
	case "datetime":
		return fmt.Sprintf("must match the %s layout", vErr.Param())
	default:
		return "is invalid"
	}
}
