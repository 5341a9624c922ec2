package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// CompletionClient calls an external text-completion endpoint and returns
// the first returned message's text.
type CompletionClient interface {
	CreateCompletion(ctx context.Context, prompt string) (string, error)
}

// Configurator recommends a parts list from free-text user preferences via
// the completion API. Recommended IDs are not checked against the catalog.
type Configurator struct {
	Client CompletionClient
}

var componentKeys = []string{"cpu", "gpu", "ram", "ssd", "hdd", "motherboard", "powersupply", "pccase"}

// Recommend assembles a prompt from the two preference strings, sends it to
// the completion API and parses the reply into a component-ID set. A
// malformed reply fails with ErrBadCompletion.
func (c Configurator) Recommend(ctx context.Context, purpose string, budget string) (model.ComponentIDs, error) {
	reply, err := c.Client.CreateCompletion(ctx, buildPrompt(purpose, budget))
	if err != nil {
		return model.ComponentIDs{}, err
	}
	return parseComponentIDs(reply)
}

func buildPrompt(purpose string, budget string) string {
	var b strings.Builder
	b.WriteString("You are configuring a PC from a parts catalog. ")
	fmt.Fprintf(&b, "The user wants: %s. The budget preference is: %s. ", purpose, budget)
	b.WriteString("Answer with exactly eight lines, one per component, each of the form key=id, ")
	b.WriteString("where key is one of: ")
	b.WriteString(strings.Join(componentKeys, ", "))
	b.WriteString(". Do not add any other text.")
	return b.String()
}

func parseComponentIDs(reply string) (model.ComponentIDs, error) {
	ids := map[string]string{}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		key, id, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		ids[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(id)
	}

	for _, key := range componentKeys {
		if ids[key] == "" {
			return model.ComponentIDs{}, errors.Wrapf(ErrBadCompletion, "missing %s in completion reply: %s", key, reply)
		}
	}
	return model.ComponentIDs{
		CpuID:         ids["cpu"],
		GpuID:         ids["gpu"],
		RamID:         ids["ram"],
		SsdID:         ids["ssd"],
		HddID:         ids["hdd"],
		MotherboardID: ids["motherboard"],
		PowerSupplyID: ids["powersupply"],
		PcCaseID:      ids["pccase"],
	}, nil
}
