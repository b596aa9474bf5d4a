//go:build unix

package main

import (
	"sort"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// applicationConfiguration contains the settings of bb_absolutize,
// extracted from the evaluated Jsonnet configuration file.
type applicationConfiguration struct {
	paths            []path.PortablePath
	workingDirectory *path.PortablePath
	checkAccess      bool
	metricsTextfile  string
}

var knownConfigurationFields = map[string]struct{}{
	"paths":            {},
	"workingDirectory": {},
	"checkAccess":      {},
	"metricsTextfile":  {},
}

func parseApplicationConfiguration(configuration *structpb.Struct) (*applicationConfiguration, error) {
	fields := configuration.GetFields()

	// Report unknown fields in sorted order, so that the error does
	// not depend on map iteration order.
	var unknownFields []string
	for key := range fields {
		if _, ok := knownConfigurationFields[key]; !ok {
			unknownFields = append(unknownFields, key)
		}
	}
	if len(unknownFields) > 0 {
		sort.Strings(unknownFields)
		return nil, status.Errorf(codes.InvalidArgument, "Unknown field %#v", unknownFields[0])
	}

	var c applicationConfiguration
	if value, ok := fields["paths"]; ok {
		list, ok := value.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "Field \"paths\" must be a list of strings")
		}
		for i, element := range list.ListValue.GetValues() {
			s, ok := element.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return nil, status.Errorf(codes.InvalidArgument, "Element %d of field \"paths\" is not a string", i)
			}
			c.paths = append(c.paths, path.NewPortablePath(s.StringValue))
		}
	}
	if value, ok := fields["workingDirectory"]; ok {
		s, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "Field \"workingDirectory\" must be a string")
		}
		workingDirectory := path.NewPortablePath(s.StringValue)
		c.workingDirectory = &workingDirectory
	}
	if value, ok := fields["checkAccess"]; ok {
		b, ok := value.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "Field \"checkAccess\" must be a boolean")
		}
		c.checkAccess = b.BoolValue
	}
	if value, ok := fields["metricsTextfile"]; ok {
		s, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok || s.StringValue == "" {
			return nil, status.Error(codes.InvalidArgument, "Field \"metricsTextfile\" must be a non-empty string")
		}
		c.metricsTextfile = s.StringValue
	}

	if len(c.paths) == 0 {
		return nil, status.Error(codes.InvalidArgument, "No paths provided")
	}
	return &c, nil
}
