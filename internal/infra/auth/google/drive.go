package google

import (
	"context"
	"log/slog"
	"net/http"

	"warden/config"
	"warden/internal/domain/entity"
	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const driveListFields = "files(id, name)"

// DriveLister implements service.ProviderFileLister over the Google Drive API.
type DriveLister struct {
	// oauth is nil without a client secret; grants are then used as stored.
	oauth *oauth2.Config
	// endpoint and base override the Drive endpoint and transport in tests.
	endpoint string
	base     http.RoundTripper
	logger   *slog.Logger
}

// NewDriveLister creates a Drive lister for accounts federated through Google.
func NewDriveLister(cfg *config.Config, logger *slog.Logger) (service.ProviderFileLister, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	lister := &DriveLister{logger: logger}
	if cfg.GoogleOAuth.ClientSecret != "" {
		lister.oauth = &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       []string{drive.DriveMetadataReadonlyScope},
		}
	}

	return lister, nil
}

// Provider returns the provider handled by this lister.
func (l *DriveLister) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// ListFiles lists with the access grant first and falls back to the refresh grant once Google answers 401.
func (l *DriveLister) ListFiles(ctx context.Context, grant service.ProviderGrant, pageSize int64) (*service.ProviderFileListing, error) {
	if grant.AccessGrant != "" {
		files, err := l.list(ctx, grant.AccessGrant, pageSize)
		if err == nil {
			return &service.ProviderFileListing{Files: files}, nil
		}
		if !isUnauthorized(err) || !l.canRefresh(grant) {
			return nil, mapDriveError(err)
		}
		l.logger.Debug("Drive access grant rejected, refreshing")
	} else if !l.canRefresh(grant) {
		return nil, errors.Wrap(service.ErrGrantRejected, "no access grant stored")
	}

	fresh, err := l.refresh(ctx, grant.RefreshGrant)
	if err != nil {
		return nil, err
	}

	files, err := l.list(ctx, fresh, pageSize)
	if err != nil {
		return nil, mapDriveError(err)
	}

	return &service.ProviderFileListing{Files: files, AccessGrant: fresh}, nil
}

func (l *DriveLister) canRefresh(grant service.ProviderGrant) bool {
	return l.oauth != nil && grant.RefreshGrant != ""
}

func (l *DriveLister) refresh(ctx context.Context, refreshGrant string) (string, error) {
	if l.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: l.base})
	}

	token, err := l.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshGrant}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil && retrieveErr.Response.StatusCode < http.StatusInternalServerError {
			return "", errors.Wrapf(service.ErrGrantRejected, "refresh refused: %s", retrieveErr.ErrorCode)
		}

		return "", errors.Wrap(err, "failed to refresh google grant")
	}

	return token.AccessToken, nil
}

func (l *DriveLister) list(ctx context.Context, accessGrant string, pageSize int64) ([]service.ProviderFile, error) {
	client := &http.Client{Transport: &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessGrant}),
		Base:   l.base,
	}}
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if l.endpoint != "" {
		opts = append(opts, option.WithEndpoint(l.endpoint))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive client")
	}

	resp, err := svc.Files.List().PageSize(pageSize).Fields(driveListFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	files := make([]service.ProviderFile, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, service.ProviderFile{ID: f.Id, Name: f.Name})
	}

	return files, nil
}

func isUnauthorized(err error) bool {
	var apiErr *googleapi.Error

	return errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized
}

// mapDriveError reports 401 and 403 as a rejected grant; anything else is an upstream fault.
func mapDriveError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return errors.Wrapf(service.ErrGrantRejected, "drive answered %d", apiErr.Code)
	}

	return errors.Wrap(err, "failed to list drive files")
}
