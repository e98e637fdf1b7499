// Package abstractfactory shows the Abstract Factory pattern: one factory
// value produces a whole family of related products, and the client only
// ever sees the interfaces.
package abstractfactory

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFamily is returned by ForFamily for an unregistered name.
var ErrUnknownFamily = errors.New("unknown product family")

type ProductA interface {
	Use() string
}

type ProductB interface {
	Eat() string
}

// Factory creates one product of each kind, all from the same family.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

type productA1 struct{}
type productA2 struct{}
type productB1 struct{}
type productB2 struct{}

func (productA1) Use() string { return "Using Product A1" }
func (productA2) Use() string { return "Using Product A2" }
func (productB1) Eat() string { return "Eating Product B1" }
func (productB2) Eat() string { return "Eating Product B2" }

// Factory1 builds the "1" family.
type Factory1 struct{}

func (Factory1) CreateProductA() ProductA { return productA1{} }
func (Factory1) CreateProductB() ProductB { return productB1{} }

// Factory2 builds the "2" family.
type Factory2 struct{}

func (Factory2) CreateProductA() ProductA { return productA2{} }
func (Factory2) CreateProductB() ProductB { return productB2{} }

var families = map[string]Factory{
	"1": Factory1{},
	"2": Factory2{},
}

// ForFamily looks up a factory by family name.
func ForFamily(name string) (Factory, error) {
	f, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("family %q: %w", name, ErrUnknownFamily)
	}
	return f, nil
}

// Families lists the registered family names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Client uses whatever family it is handed and reports what it did.
// It never names a concrete product type.
func Client(f Factory) []string {
	a := f.CreateProductA()
	b := f.CreateProductB()
	return []string{a.Use(), b.Eat()}
}
