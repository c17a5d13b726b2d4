package decorator

import (
	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/naming"
	"github.com/broady/discogen/discovery"
)

// ResourcePropertyDecorator adds, for each child resource of the container, a
// public read-only property and the private field backing it:
//
//	public virtual Activities Activities { get { return this.activities; } }
//	private final Activities activities;
//
// Child resources are numbered from 1 in iteration order; the numbering
// restarts for every container and feeds the Namer's fallback names.
type ResourcePropertyDecorator struct {
	// Namer derives member and type names. Defaults to naming.Standard
	// with the "Resource" fallback.
	Namer naming.Namer
}

var _ ResourceContainerDecorator = (*ResourcePropertyDecorator)(nil)

// DecoratorName implements Named.
func (d *ResourcePropertyDecorator) DecoratorName() string { return "ResourcePropertyDecorator" }

// DecorateClass implements ResourceContainerDecorator.
func (d *ResourcePropertyDecorator) DecorateClass(container discovery.ResourceContainer, class *codedom.Class) error {
	if container == nil {
		return discogen.NewError(discogen.CodeInvalidArgument, "ResourcePropertyDecorator: container is nil")
	}
	if class == nil {
		return discogen.NewError(discogen.CodeInvalidArgument, "ResourcePropertyDecorator: class is nil")
	}

	ordinal := 1
	for _, res := range container.ChildResources().All() {
		if err := class.AddMember(d.resourceGetter(res, ordinal)); err != nil {
			return err
		}
		if err := class.AddMember(d.resourceField(res, ordinal)); err != nil {
			return err
		}
		ordinal++
	}
	return nil
}

func (d *ResourcePropertyDecorator) resourceField(res *discovery.Resource, ordinal int) *codedom.Field {
	n := namerOr(d.Namer, resourceNamer)
	return &codedom.Field{
		Name:       n.FieldName(res.Name, ordinal),
		Type:       codedom.Type(n.ClassName(res.Name, ordinal)),
		Attributes: codedom.AttrPrivate | codedom.AttrFinal,
	}
}

func (d *ResourcePropertyDecorator) resourceGetter(res *discovery.Resource, ordinal int) *codedom.Property {
	n := namerOr(d.Namer, resourceNamer)
	className := n.ClassName(res.Name, ordinal)
	return &codedom.Property{
		Name:       className,
		Type:       codedom.Type(className),
		Attributes: codedom.AttrPublic | codedom.AttrVirtual,
		HasGet:     true,
		Get: []codedom.Statement{
			codedom.Return{Value: codedom.FieldRef{Name: n.FieldName(res.Name, ordinal)}},
		},
	}
}
