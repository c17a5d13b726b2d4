// Package input resolves the service descriptions named on the command line.
package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/broady/discogen"
	"github.com/broady/discogen/discovery"
)

// Input formats.
const (
	FormatAuto      = "auto"
	FormatDiscovery = "discovery"
	FormatOpenAPI   = "openapi"
	FormatRest      = "rest"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatAuto, FormatDiscovery, FormatOpenAPI, FormatRest}

// Options controls how inputs are loaded.
type Options struct {
	// Format is one of the Format* constants. Empty means FormatAuto.
	Format string

	// Endpoint overrides the Discovery Service endpoint for rest inputs.
	Endpoint string
}

// Load resolves ref into a service description.
//
// A ref is either a file path or, for the rest format, an "api:version"
// reference fetched from the Discovery Service. In auto mode a ref that is
// not an existing file but looks like api:version is fetched; files holding a
// top-level "openapi" key load as OpenAPI 3 and everything else as a
// discovery document.
func Load(ctx context.Context, ref string, opts Options) (*discovery.Service, error) {
	format := opts.Format
	if format == "" {
		format = FormatAuto
	}
	switch format {
	case FormatRest:
		return fetch(ctx, ref, opts)
	case FormatDiscovery:
		return discovery.LoadFile(ref)
	case FormatOpenAPI:
		return discovery.LoadOpenAPIFile(ref)
	case FormatAuto:
	default:
		return nil, discogen.Errorf(discogen.CodeInvalidArgument, "unknown input format %q", format)
	}

	data, err := os.ReadFile(ref)
	if errors.Is(err, fs.ErrNotExist) && isAPIRef(ref) {
		return fetch(ctx, ref, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	if isOpenAPI(data) {
		return discovery.LoadOpenAPIFile(ref)
	}
	svc, err := discovery.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ref, err)
	}
	return svc, nil
}

// LoadAll loads every ref in order.
func LoadAll(ctx context.Context, refs []string, opts Options) ([]*discovery.Service, error) {
	services := make([]*discovery.Service, 0, len(refs))
	for _, ref := range refs {
		svc, err := Load(ctx, ref, opts)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

func fetch(ctx context.Context, ref string, opts Options) (*discovery.Service, error) {
	api, version, ok := strings.Cut(ref, ":")
	if !ok || !isAPIRef(ref) {
		return nil, discogen.Errorf(discogen.CodeInvalidArgument, "%q is not an api:version reference", ref)
	}
	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	return discovery.Fetch(ctx, api, version, clientOpts...)
}

// isAPIRef reports whether ref has the shape name:version with no path
// separators, e.g. "plus:v1" or "cloudtasks:v2beta3".
func isAPIRef(ref string) bool {
	api, version, ok := strings.Cut(ref, ":")
	if !ok || api == "" || version == "" {
		return false
	}
	return !strings.ContainsAny(ref, `/\`) && !strings.Contains(version, ":")
}

func isOpenAPI(data []byte) bool {
	var head struct {
		OpenAPI string `yaml:"openapi"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return false
	}
	return head.OpenAPI != ""
}
