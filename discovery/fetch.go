package discovery

import (
	"context"
	"errors"
	"net/http"

	discoveryv1 "google.golang.org/api/discovery/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/broady/discogen"
)

// Fetch retrieves the REST description of api at version from the Google
// APIs Discovery Service and converts it with FromRestDescription.
//
// The request is unauthenticated unless opts say otherwise. Use
// option.WithEndpoint to point at a mirror.
func Fetch(ctx context.Context, api, version string, opts ...option.ClientOption) (*Service, error) {
	if api == "" || version == "" {
		return nil, discogen.NewError(discogen.CodeInvalidArgument, "api name and version are required")
	}
	client, err := discoveryv1.NewService(ctx, append([]option.ClientOption{option.WithoutAuthentication()}, opts...)...)
	if err != nil {
		return nil, err
	}
	desc, err := client.Apis.GetRest(api, version).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, discogen.Errorf(discogen.CodeNotFound, "api %s %s not found", api, version).
				WithDetail("api", api).
				WithDetail("version", version)
		}
		return nil, err
	}
	return FromRestDescription(desc), nil
}
