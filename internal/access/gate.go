package access

import (
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Gate struct {
	logger logger.Logger
}

func NewGate(log logger.Logger) *Gate {
	return &Gate{logger: log}
}

// Authorize admits p only when it holds the required role. An anonymous
// caller and a caller with the wrong role get the same error.
func (g *Gate) Authorize(p *domain.Principal, required domain.Role) error {
	if p == nil || p.Role != required {
		subject := ""
		if p != nil {
			subject = p.Subject
		}
		g.logger.Debug("access denied",
			logger.String("subject", subject),
			logger.String("required_role", string(required)),
		)
		return domain.ErrDenied
	}
	return nil
}
