package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/algorithms/patterns/abstractfactory"
	"github.com/marcodamonte/algorithms/patterns/factorymethod"
)

type familyResult struct {
	Family string   `json:"family" yaml:"family"`
	Lines  []string `json:"lines" yaml:"lines"`
}

type factoryResult struct {
	AbstractFactory []familyResult `json:"abstract_factory" yaml:"abstract_factory"`
	FactoryMethod   []string       `json:"factory_method" yaml:"factory_method"`
}

func (r factoryResult) Text() string {
	var b strings.Builder
	for _, f := range r.AbstractFactory {
		b.WriteString("Using the products created by Factory " + f.Family + ":\n")
		for _, l := range f.Lines {
			b.WriteString(l + "\n")
		}
	}
	if len(r.FactoryMethod) > 0 {
		b.WriteString("Factory method:\n")
		for _, l := range r.FactoryMethod {
			b.WriteString(l + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *app) factoryCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Abstract Factory and Factory Method demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFactory(family)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Only run the abstract factory for this family (1 or 2)")
	return cmd
}

func (a *app) runFactory(family string) error {
	families := abstractfactory.Families()
	if family != "" {
		families = []string{family}
	}

	var r factoryResult
	for _, name := range families {
		f, err := abstractfactory.ForFamily(name)
		if err != nil {
			a.log.Warn("Unknown family", zap.String("family", name), zap.Strings("known", abstractfactory.Families()))
			return err
		}
		r.AbstractFactory = append(r.AbstractFactory, familyResult{Family: name, Lines: abstractfactory.Client(f)})
	}

	if family == "" {
		for _, kind := range factorymethod.Kinds() {
			p, err := factorymethod.New(kind)
			if err != nil {
				return err
			}
			r.FactoryMethod = append(r.FactoryMethod, p.Use())
		}
	}
	return a.out.Render(r)
}
