package service

import (
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService exposes the build metadata stamped into the binary.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
