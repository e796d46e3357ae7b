package main

import (
	j "github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	supervisor "github.com/axondata/go-supervisor"
)

const header = "Code generated by supervisorgen. DO NOT EDIT."

// NoLower keeps acronyms such as getAPIVersion -> GetAPIVersion intact.
var toTitle = cases.Title(language.English, cases.NoLower)

func goName(m supervisor.MethodSpec) string {
	return toTitle.String(m.Name)
}

func generateMethod(m supervisor.MethodSpec) j.Code {
	params := []j.Code{j.Id("ctx").Qual("context", "Context")}
	var forwarded []j.Code
	for _, p := range m.Params {
		params = append(params, j.Id(p.Name).Id(p.Type))
		forwarded = append(forwarded, j.Id(p.Name))
	}

	target := "reply"
	if m.Decode != "" {
		target = "raw"
	}
	callArgs := append([]j.Code{j.Id("ctx"), j.Lit(m.Name), j.Op("&").Id(target)}, forwarded...)

	return j.Func().Params(j.Id("c").Op("*").Id("Client")).Id(goName(m)).Params(params...).
		Params(j.Id(m.Result), j.Error()).BlockFunc(func(g *j.Group) {
		if m.Decode == "" {
			g.Var().Id("reply").Id(m.Result)
			g.Id("err").Op(":=").Id("c").Dot("CallInto").Call(callArgs...)
			g.Return(j.Id("reply"), j.Id("err"))
			return
		}
		g.Var().Id("raw").Any()
		g.Id("err").Op(":=").Id("c").Dot("CallInto").Call(callArgs...)
		g.Return(j.Id(m.Decode).Call(j.Id("raw"), j.Id("err")))
	})
}

func generateFile(methods []supervisor.MethodSpec) *j.File {
	f := j.NewFile("supervisor")
	f.HeaderComment(header)
	for i, m := range methods {
		if i > 0 {
			f.Line()
		}
		f.Commentf("%s %s", goName(m), m.Doc)
		f.Commentf("It calls %s.", m.FullName())
		f.Add(generateMethod(m))
	}
	return f
}
