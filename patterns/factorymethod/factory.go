// Package factorymethod shows the Factory Method pattern: each Creator
// decides which concrete Product to build behind a common interface.
package factorymethod

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownProduct = errors.New("unknown product kind")

type Product interface {
	Use() string
}

type Creator interface {
	CreateProduct() Product
}

type ConcreteProductA struct{}

func (ConcreteProductA) Use() string { return "Using ConcreteProductA" }

type ConcreteProductB struct{}

func (ConcreteProductB) Use() string { return "Using ConcreteProductB" }

type CreatorA struct{}

func (CreatorA) CreateProduct() Product { return ConcreteProductA{} }

// CreatorFunc adapts a plain function to Creator, the way http.HandlerFunc
// adapts to http.Handler.
type CreatorFunc func() Product

func (f CreatorFunc) CreateProduct() Product { return f() }

// CreatorB needs no state of its own, so a function is enough.
var CreatorB = CreatorFunc(func() Product { return ConcreteProductB{} })

var creators = map[string]Creator{
	"a": CreatorA{},
	"b": CreatorB,
}

// Kinds lists the registered product kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(creators))
	for k := range creators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds the product registered under kind.
func New(kind string) (Product, error) {
	c, ok := creators[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnknownProduct)
	}
	return c.CreateProduct(), nil
}
