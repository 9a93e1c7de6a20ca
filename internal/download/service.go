package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/pixeluted/krampui-updater/internal/config"
	"github.com/pixeluted/krampui-updater/internal/model"
	"github.com/pixeluted/krampui-updater/internal/platform"
)

// Service downloads the release into the destination file
type Service struct {
	url         string
	userAgent   string
	destination string
	bufferSize  int

	client *http.Client
	files  Destination
	logger *log.Entry
}

// NewService creates a download service for the given settings
func NewService(settings config.Settings, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	bufferSize := settings.BufferSize
	if bufferSize <= 0 {
		bufferSize = config.DefaultBufferSize
	}

	return &Service{
		url:         settings.ReleaseURL,
		userAgent:   settings.UserAgent,
		destination: settings.Destination,
		bufferSize:  bufferSize,
		client:      http.DefaultClient,
		files:       DestinationFunc(createFile),
		logger:      logger,
	}
}

// SetClient replaces the HTTP client used for the request
func (s *Service) SetClient(client *http.Client) {
	s.client = client
}

// SetDestination replaces how the destination file is created
func (s *Service) SetDestination(files Destination) {
	s.files = files
}

// Run downloads the release. It never retries: the first failure ends the run.
func (s *Service) Run(ctx context.Context, state *model.UpdateProgress) Result {
	if err := s.download(ctx, state); err != nil {
		var f *Failure
		if !errors.As(err, &f) {
			f = fail(KindRead, err)
		}
		s.logger.WithError(f.Err).WithField("kind", f.Kind).Warn(f.Error())
		return Result{Failure: f}
	}

	state.Complete()
	s.logger.Infof("release saved to %s", s.destination)
	return Result{Success: true}
}

func (s *Service) download(ctx context.Context, state *model.UpdateProgress) error {
	s.logger.Debugf("starting download from %s", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fail(KindRequest, fmt.Errorf("failed to create HTTP request: %w", err))
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fail(KindRequest, fmt.Errorf("failed to perform HTTP request: %w", err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(KindRequest, fmt.Errorf("unexpected HTTP status: %d", resp.StatusCode))
	}

	// ContentLength is -1 when the server did not declare it
	total := resp.ContentLength
	known := total > 0
	if !known {
		s.logger.Debug("content length unknown, progress is indeterminate")
		state.SetIndeterminate(true)
	}

	out, err := s.files.Create(s.destination)
	if err != nil {
		return fail(KindCreate, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			s.logger.Warnf("error closing file %q: %v", s.destination, cerr)
		}
	}()

	w := bufio.NewWriterSize(out, s.bufferSize)
	buf := make([]byte, s.bufferSize)
	var downloaded int64

	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fail(KindWrite, werr)
			}
			downloaded += int64(n)
			if known {
				state.SetValue(float32(downloaded) / float32(total))
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			if ctx.Err() != nil {
				rerr = fmt.Errorf("%w: %v", ctx.Err(), rerr)
			}
			return fail(KindRead, rerr)
		}
	}

	if err := w.Flush(); err != nil {
		return fail(KindFlush, err)
	}
	if err := out.Sync(); err != nil {
		return fail(KindSync, err)
	}

	if !known {
		state.SetValue(1)
		state.SetIndeterminate(false)
	}

	s.logger.Debugf("downloaded %d bytes", downloaded)
	return nil
}

func createFile(path string) (File, error) {
	f, err := platform.CreateFile(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
