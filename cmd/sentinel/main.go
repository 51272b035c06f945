// Command sentinel analyzes GitHub repositories and pull requests and
// synthesizes improvement suggestions ready to file as issues.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sneaxhuh/sentinel/internal/adapters/driven/config/file"
	"github.com/sneaxhuh/sentinel/internal/adapters/driven/discovery/agentverse"
	"github.com/sneaxhuh/sentinel/internal/adapters/driven/factstore/memory"
	"github.com/sneaxhuh/sentinel/internal/adapters/driven/identity"
	"github.com/sneaxhuh/sentinel/internal/adapters/driven/llm/asione"
	"github.com/sneaxhuh/sentinel/internal/adapters/driving/cli"
	"github.com/sneaxhuh/sentinel/internal/connectors/github"
	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := file.DefaultPath()
	if err != nil {
		// No home directory: environment-only configuration.
		path = ""
	}
	cfg, err := file.Load(path)
	if err != nil {
		return err
	}

	chat, err := asione.NewChatService(asione.Config{
		APIKey: cfg.ASIOneAPIKey,
		Model:  cfg.Model,
	})
	if err != nil {
		return err
	}

	var id driven.Identity
	if cfg.IdentityMode == file.IdentityModeSeed {
		id, err = identity.NewSeedIdentity(cfg.IdentitySeed)
		if err != nil {
			return err
		}
	} else {
		id = identity.StaticIdentity{}
	}

	var discovery driven.Discovery
	if cfg.AgentverseAPIKey != "" {
		discovery, err = agentverse.NewSearchClient(agentverse.SearchConfig{
			APIKey: cfg.AgentverseAPIKey,
		})
		if err != nil {
			return err
		}
	} else {
		// Without marketplace access every run degrades to direct
		// analysis.
		discovery = noDiscovery{}
	}

	messenger := agentverse.NewMessenger(agentverse.MessengerConfig{}, id)
	collector := agentverse.NewSimulatedCollector(time.Now().UnixNano())
	repos := github.NewService(context.Background(), cfg.GitHubToken)
	facts := memory.NewSeededFactStore(services.SeedFacts())

	gateway := services.NewAdvisorGateway(discovery, messenger, collector, chat)
	engine := services.NewSynthesisEngine(chat)
	classifier := services.NewClassifier(facts)
	analyzer := services.NewAnalyzerService(gateway, engine, classifier, facts, repos)
	analyzer.SetCreateIssues(cfg.CreateIssues)

	cli.SetAnalyzer(analyzer)
	cli.SetIdentityAddress(id.Address())
	return cli.Execute()
}

// noDiscovery is used when no marketplace credentials are configured.
type noDiscovery struct{}

func (noDiscovery) Search(context.Context, string) ([]domain.AgentDescriptor, error) {
	return nil, nil
}
