// SPDX-License-Identifier: GPL-3.0-or-later
package modules

import (
	"fmt"
	"time"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/modules/akismet"
	"github.com/CrawX/go-spamblocker/modules/stopforumspam"
)

type Deps struct {
	Config  domain.ModuleConfig
	Timeout time.Duration

	StopForumSpamEndpoint string
	AkismetEndpoint       string
}

type constructor func(deps Deps) domain.SpamCheckModule

var constructors = map[string]constructor{
	stopforumspam.Name: func(deps Deps) domain.SpamCheckModule {
		return stopforumspam.NewStopForumSpam(stopforumspam.NewClient(deps.StopForumSpamEndpoint, deps.Timeout))
	},
	akismet.Name: func(deps Deps) domain.SpamCheckModule {
		return akismet.NewAkismet(akismet.NewClient(deps.AkismetEndpoint, deps.Timeout), deps.Config)
	},
}

// Names lists every known module in its default order.
var Names = []string{stopforumspam.Name, akismet.Name}

// Build constructs the named modules in the given order.
func Build(names []string, deps Deps) ([]domain.SpamCheckModule, error) {
	modules := make([]domain.SpamCheckModule, 0, len(names))
	for _, name := range names {
		c, ok := constructors[name]
		if !ok {
			return nil, fmt.Errorf("unknown module %q, known modules are %v", name, Names)
		}
		modules = append(modules, c(deps))
	}

	return modules, nil
}
