// Package catalog holds the command shapes understood by the CLI and the chat
// bot, and an in-memory package registry they operate on.
package catalog

import (
	"time"

	"github.com/footprint-tools/verbparse/shape"
)

// CreatePackage registers a package.
type CreatePackage struct {
	Name     string `param:"n,name"`
	Version  string `param:"v,version,optional"`
	Tag      string `param:"t,tag,optional"`
	IsHidden bool   `option:"h,hidden"`
}

func (CreatePackage) Verb() string { return "create" }

// DeletePackage removes a package. Hidden packages need Force.
type DeletePackage struct {
	Name  string `param:"n,name"`
	Force bool   `option:"f,force"`
}

func (DeletePackage) Verb() string { return "delete" }

// ListPackages lists packages whose name contains Query.
type ListPackages struct {
	Query string `param:"q,query,optional"`
	Limit int    `param:"l,limit,optional"`
	All   bool   `option:"a,all"`
}

func (ListPackages) Verb() string { return "list" }

// TagPackage sets the tag of an existing package.
type TagPackage struct {
	Name string `param:"n,name,order=1"`
	Tag  string `param:"t,tag,order=2"`
}

func (TagPackage) Verb() string { return "tag" }

// Ping answers with the time it was received.
type Ping struct {
	Delay time.Duration `param:"d,delay,optional"`
}

func (Ping) Verb() string { return "ping" }

// Shapes returns the shapes of every catalog command.
func Shapes() []*shape.Shape {
	return []*shape.Shape{
		shape.MustOf[CreatePackage](),
		shape.MustOf[DeletePackage](),
		shape.MustOf[ListPackages](),
		shape.MustOf[TagPackage](),
		shape.MustOf[Ping](),
	}
}

// Verbs returns the verbs of every catalog command, in Shapes order.
func Verbs() []string {
	shapes := Shapes()
	verbs := make([]string, len(shapes))
	for i, sh := range shapes {
		verbs[i] = sh.Verb
	}
	return verbs
}
