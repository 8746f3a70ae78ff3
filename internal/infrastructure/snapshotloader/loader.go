package snapshotloader

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"object_explorer/internal/pkg/utils"
)

const defaultDownloadTimeout = 15 * time.Second

// Loader reads snapshots from the local filesystem or over HTTP.
type Loader struct {
	client  *fasthttp.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewLoader creates a Loader. A zero timeout selects the default.
func NewLoader(timeout time.Duration, logger *zap.Logger) *Loader {
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}
	return &Loader{
		client:  &fasthttp.Client{},
		timeout: timeout,
		logger:  logger.Named("SnapshotLoader"),
	}
}

// Load reads the snapshot at location, which is either a file path or an
// http(s) URL. The document format follows the extension (.json, .yml, .yaml).
func (l *Loader) Load(ctx context.Context, location string) (*Snapshot, error) {
	var snap Snapshot
	if isRemote(location) {
		data, format, err := l.download(ctx, location)
		if err != nil {
			return nil, err
		}
		if err := utils.DecodeData(data, format, &snap); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", location, err)
		}
	} else if err := utils.DecodeFile(location, &snap); err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := validate(&snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", location, err)
	}
	l.logger.Info("Snapshot loaded", zap.String("location", location), zap.Int("objects", len(snap.Objects)))
	return &snap, nil
}

func (l *Loader) download(ctx context.Context, location string) ([]byte, string, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(location)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(l.timeout)
	}
	if err := l.client.DoDeadline(req, resp, deadline); err != nil {
		l.logger.Error("Snapshot download failed", zap.String("url", location), zap.Error(err))
		return nil, "", fmt.Errorf("failed to download snapshot from %s: %w", location, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		l.logger.Error("Snapshot download returned non-OK status",
			zap.String("url", location),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, "", fmt.Errorf("snapshot download from %s failed with status %d", location, resp.StatusCode())
	}

	// The body buffer is released with resp.
	body := append([]byte(nil), resp.Body()...)
	return body, remoteFormat(location, string(resp.Header.ContentType())), nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// remoteFormat picks the decoder for a downloaded snapshot: the URL path
// extension wins, then the content type, then JSON.
func remoteFormat(location, contentType string) string {
	if u, err := url.Parse(location); err == nil {
		switch ext := strings.ToLower(path.Ext(u.Path)); ext {
		case ".json", ".yml", ".yaml":
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && strings.Contains(mediaType, "yaml") {
		return ".yaml"
	}
	return ".json"
}

func validate(snap *Snapshot) error {
	seen := make(map[string]struct{}, len(snap.Objects))
	for i, e := range snap.Objects {
		id := normalizeID(e.ID)
		if id == "" {
			return fmt.Errorf("object #%d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate object id %s", e.ID)
		}
		seen[id] = struct{}{}
	}
	return nil
}
