package prototest

import (
	"fmt"

	"github.com/jhump/protoreflect/desc/builder"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Message returns a message with empty options, ready to carry annotations.
func Message(name string, fields ...*builder.FieldBuilder) *builder.MessageBuilder {
	mb := builder.NewMessage(name)
	mb.SetOptions(&descriptorpb.MessageOptions{})
	mb.SetComments(builder.Comments{
		LeadingComment: fmt.Sprintf("A %v.", name),
	})
	for _, f := range fields {
		mb.AddField(f)
	}
	return mb
}

// StringField returns a plain string field.
func StringField(name string, number int32) *builder.FieldBuilder {
	return builder.NewField(name, builder.FieldTypeString()).SetNumber(number)
}

// Nest adds nested messages to mb.
func Nest(mb *builder.MessageBuilder, nested ...*builder.MessageBuilder) *builder.MessageBuilder {
	for _, n := range nested {
		mb.AddNestedMessage(n)
	}
	return mb
}
