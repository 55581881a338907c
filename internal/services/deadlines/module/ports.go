package module

import "dealdesk/internal/services/deadlines/domain"

// Ports defines deadlines module ports exposed via the registry
type Ports struct {
	Scanner domain.ScannerPort
	Edit    domain.EditPort
	Reader  domain.ReaderPort
}
