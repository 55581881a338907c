package service

import "dealdesk/internal/modkit"

// testDeps returns zero deps; the zero logger discards everything
func testDeps() modkit.Deps { return modkit.Deps{} }
