package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	"engineershub/internal/util"

	"github.com/gabriel-vasile/mimetype"
)

// resumeFormField is the multipart field the backend reads the file from.
const resumeFormField = "file"

type evaluationEnvelope struct {
	Analysis *entity.ResumeEvaluation `json:"analysis"`
}

// ResumeContentType returns the declared type of the upload, or the type sniffed from its content.
func ResumeContentType(upload *entity.ResumeUpload) string {
	if declared := strings.TrimSpace(upload.ContentType); declared != "" {
		return declared
	}

	for mt := mimetype.Detect(upload.Data); mt != nil; mt = mt.Parent() {
		if mimetype.EqualsAny(mt.String(), entity.AllowedResumeTypes...) {
			return mt.String()
		}
	}

	return mimetype.Detect(upload.Data).String()
}

// ValidateResume checks type and size locally. It never touches the network.
func ValidateResume(upload *entity.ResumeUpload, maxBytes int64) error {
	if upload == nil || upload.Size() == 0 {
		return domainerrors.ErrEmptyFile
	}
	if !mimetype.EqualsAny(ResumeContentType(upload), entity.AllowedResumeTypes...) {
		return domainerrors.ErrUnsupportedFileType
	}
	if upload.Size() > maxBytes {
		return domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("%s exceeds %s", util.FormatBytes(upload.Size()), util.FormatBytes(maxBytes)))
	}

	return nil
}

// Validate applies ValidateResume with the configured upload limit.
func (c *Client) Validate(upload *entity.ResumeUpload) error {
	return ValidateResume(upload, c.cfg.MaxUploadBytes)
}

// Evaluate uploads the resume to POST /resume/evaluate as multipart field "file".
// Validation runs first, so an invalid upload never reaches the network.
func (c *Client) Evaluate(ctx context.Context, upload *entity.ResumeUpload) (*entity.ResumeEvaluation, error) {
	if err := c.Validate(upload); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, resumeFormField, upload.FileName))
	header.Set("Content-Type", ResumeContentType(upload))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart part")
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, errors.Wrap(err, "write multipart part")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/resume/evaluate", nil), &body)
	if err != nil {
		return nil, errors.Wrap(err, "build resume upload")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var envelope evaluationEnvelope
	if err := c.send(ctx, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Analysis == nil {
		return nil, domainerrors.ErrResumeEvaluationFailed.WithDetails("empty analysis")
	}

	return envelope.Analysis, nil
}
