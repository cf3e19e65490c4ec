package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rankmaker/rankmaker/internal/config"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/media"
)

type MediaHandler struct {
	uploader *media.Uploader
	cfg      *config.Config
}

func NewMediaHandler(uploader *media.Uploader, cfg *config.Config) *MediaHandler {
	return &MediaHandler{uploader: uploader, cfg: cfg}
}

// Upload handles POST /api/uploads: the server-proxied multipart path for
// small image files. The batch is all-or-nothing; one rejected file fails
// the whole request before anything is stored.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return badRequest(c, "No files provided")
	}

	for _, f := range files {
		mediaType := media.Classify(f.Header.Get(fiber.HeaderContentType), f.Filename)
		if mediaType == media.TypeVideo || mediaType == media.TypeAudio {
			return badRequest(c, "Video and audio files must use the direct upload path")
		}
		if f.Size > h.cfg.UploadProxyMax {
			return badRequest(c, "File too large for proxied upload, use the direct upload path")
		}
	}

	resp := dto.UploadResponse{Files: make([]dto.UploadedFile, 0, len(files))}
	for _, f := range files {
		src, err := f.Open()
		if err != nil {
			return fail(c, err)
		}

		url, err := h.uploader.Upload(c.Context(), f.Filename, f.Header.Get(fiber.HeaderContentType), src)
		src.Close()
		if err != nil {
			return fail(c, err)
		}

		resp.Files = append(resp.Files, dto.UploadedFile{
			URL:          url,
			OriginalName: f.Filename,
			MediaType:    string(media.Classify(f.Header.Get(fiber.HeaderContentType), f.Filename)),
		})
	}

	return c.JSON(resp)
}

// DirectUpload handles POST /api/uploads/direct: the handshake for large
// files and any video/audio. The client PUTs the bytes straight to the
// media host, bypassing this server.
func (h *MediaHandler) DirectUpload(c *fiber.Ctx) error {
	var req dto.DirectUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.FileName == "" || req.ContentType == "" {
		return badRequest(c, "fileName and contentType are required")
	}

	uploadURL, key, err := h.uploader.PresignPut(c.Context(), req.FileName, req.ContentType)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.DirectUploadResponse{
		URL:       uploadURL,
		Key:       key,
		PublicURL: h.uploader.PublicURL(key),
		MediaType: string(media.Classify(req.ContentType, req.FileName)),
	})
}

// ParseEmbed handles POST /api/embeds: recognizes YouTube, Twitter/X and
// Instagram links; anything else is rejected as unrecognized.
func (h *MediaHandler) ParseEmbed(c *fiber.Ctx) error {
	var req dto.EmbedRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	embed := media.ParseEmbedURL(req.URL)
	if embed == nil {
		return badRequest(c, "Unrecognized embed URL")
	}

	return c.JSON(dto.EmbedResponse{
		Type:     string(embed.Type),
		EmbedID:  embed.EmbedID,
		MediaURL: embed.MediaURL,
	})
}
