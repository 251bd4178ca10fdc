package el

import "github.com/vango-dev/htmlcomp/pkg/dom"

// Fragment groups children without a wrapper element.
func Fragment(args ...any) *dom.Element { return dom.Fragment(args...) }

// Document structure elements

func Html(args ...any) *dom.Element  { return dom.New("html", args...) }
func Head(args ...any) *dom.Element  { return dom.New("head", args...) }
func Body(args ...any) *dom.Element  { return dom.New("body", args...) }
func Title(args ...any) *dom.Element { return dom.New("title", args...) }
func Meta(args ...any) *dom.Element  { return dom.New("meta", args...) }
func Link(args ...any) *dom.Element  { return dom.New("link", args...) }
func Base(args ...any) *dom.Element  { return dom.New("base", args...) }
func Style(args ...any) *dom.Element { return dom.New("style", args...) }

// Content sectioning elements

func Header(args ...any) *dom.Element  { return dom.New("header", args...) }
func Footer(args ...any) *dom.Element  { return dom.New("footer", args...) }
func Main(args ...any) *dom.Element    { return dom.New("main", args...) }
func Nav(args ...any) *dom.Element     { return dom.New("nav", args...) }
func Section(args ...any) *dom.Element { return dom.New("section", args...) }
func Article(args ...any) *dom.Element { return dom.New("article", args...) }
func Aside(args ...any) *dom.Element   { return dom.New("aside", args...) }
func Address(args ...any) *dom.Element { return dom.New("address", args...) }
func H1(args ...any) *dom.Element      { return dom.New("h1", args...) }
func H2(args ...any) *dom.Element      { return dom.New("h2", args...) }
func H3(args ...any) *dom.Element      { return dom.New("h3", args...) }
func H4(args ...any) *dom.Element      { return dom.New("h4", args...) }
func H5(args ...any) *dom.Element      { return dom.New("h5", args...) }
func H6(args ...any) *dom.Element      { return dom.New("h6", args...) }
func Hgroup(args ...any) *dom.Element  { return dom.New("hgroup", args...) }

// Text content elements

func Div(args ...any) *dom.Element        { return dom.New("div", args...) }
func P(args ...any) *dom.Element          { return dom.New("p", args...) }
func Span(args ...any) *dom.Element       { return dom.New("span", args...) }
func Pre(args ...any) *dom.Element        { return dom.New("pre", args...) }
func Blockquote(args ...any) *dom.Element { return dom.New("blockquote", args...) }
func Ul(args ...any) *dom.Element         { return dom.New("ul", args...) }
func Ol(args ...any) *dom.Element         { return dom.New("ol", args...) }
func Li(args ...any) *dom.Element         { return dom.New("li", args...) }
func Dl(args ...any) *dom.Element         { return dom.New("dl", args...) }
func Dt(args ...any) *dom.Element         { return dom.New("dt", args...) }
func Dd(args ...any) *dom.Element         { return dom.New("dd", args...) }
func Hr(args ...any) *dom.Element         { return dom.New("hr", args...) }
func Figure(args ...any) *dom.Element     { return dom.New("figure", args...) }
func Figcaption(args ...any) *dom.Element { return dom.New("figcaption", args...) }
func Menu(args ...any) *dom.Element       { return dom.New("menu", args...) }

// Inline text semantics

func A(args ...any) *dom.Element      { return dom.New("a", args...) }
func Strong(args ...any) *dom.Element { return dom.New("strong", args...) }
func Em(args ...any) *dom.Element     { return dom.New("em", args...) }
func B(args ...any) *dom.Element      { return dom.New("b", args...) }
func I(args ...any) *dom.Element      { return dom.New("i", args...) }
func U(args ...any) *dom.Element      { return dom.New("u", args...) }
func S(args ...any) *dom.Element      { return dom.New("s", args...) }
func Small(args ...any) *dom.Element  { return dom.New("small", args...) }
func Mark(args ...any) *dom.Element   { return dom.New("mark", args...) }
func Sub(args ...any) *dom.Element    { return dom.New("sub", args...) }
func Sup(args ...any) *dom.Element    { return dom.New("sup", args...) }
func Code(args ...any) *dom.Element   { return dom.New("code", args...) }
func Kbd(args ...any) *dom.Element    { return dom.New("kbd", args...) }
func Samp(args ...any) *dom.Element   { return dom.New("samp", args...) }
func Var(args ...any) *dom.Element    { return dom.New("var", args...) }
func Abbr(args ...any) *dom.Element   { return dom.New("abbr", args...) }
func Time(args ...any) *dom.Element   { return dom.New("time", args...) }
func Cite(args ...any) *dom.Element   { return dom.New("cite", args...) }
func Q(args ...any) *dom.Element      { return dom.New("q", args...) }
func Dfn(args ...any) *dom.Element    { return dom.New("dfn", args...) }
func Ruby(args ...any) *dom.Element   { return dom.New("ruby", args...) }
func Rt(args ...any) *dom.Element     { return dom.New("rt", args...) }
func Rp(args ...any) *dom.Element     { return dom.New("rp", args...) }
func Bdi(args ...any) *dom.Element    { return dom.New("bdi", args...) }
func Bdo(args ...any) *dom.Element    { return dom.New("bdo", args...) }
func Wbr(args ...any) *dom.Element    { return dom.New("wbr", args...) }
func Br(args ...any) *dom.Element     { return dom.New("br", args...) }
func Data(args ...any) *dom.Element   { return dom.New("data", args...) }

// Edits

func Ins(args ...any) *dom.Element { return dom.New("ins", args...) }
func Del(args ...any) *dom.Element { return dom.New("del", args...) }

// Embedded content

func Img(args ...any) *dom.Element     { return dom.New("img", args...) }
func Iframe(args ...any) *dom.Element  { return dom.New("iframe", args...) }
func Embed(args ...any) *dom.Element   { return dom.New("embed", args...) }
func Object(args ...any) *dom.Element  { return dom.New("object", args...) }
func Param(args ...any) *dom.Element   { return dom.New("param", args...) }
func Video(args ...any) *dom.Element   { return dom.New("video", args...) }
func Audio(args ...any) *dom.Element   { return dom.New("audio", args...) }
func Source(args ...any) *dom.Element  { return dom.New("source", args...) }
func Track(args ...any) *dom.Element   { return dom.New("track", args...) }
func Picture(args ...any) *dom.Element { return dom.New("picture", args...) }
func Canvas(args ...any) *dom.Element  { return dom.New("canvas", args...) }
func Map(args ...any) *dom.Element     { return dom.New("map", args...) }
func Area(args ...any) *dom.Element    { return dom.New("area", args...) }
func Math(args ...any) *dom.Element    { return dom.New("math", args...) }
func Svg(args ...any) *dom.Element     { return dom.New("svg", args...) }

// Scripting

func Script(args ...any) *dom.Element   { return dom.New("script", args...) }
func Noscript(args ...any) *dom.Element { return dom.New("noscript", args...) }
func Template(args ...any) *dom.Element { return dom.New("template", args...) }
func Slot(args ...any) *dom.Element     { return dom.New("slot", args...) }

// Table content

func Table(args ...any) *dom.Element    { return dom.New("table", args...) }
func Caption(args ...any) *dom.Element  { return dom.New("caption", args...) }
func Colgroup(args ...any) *dom.Element { return dom.New("colgroup", args...) }
func Col(args ...any) *dom.Element      { return dom.New("col", args...) }
func Thead(args ...any) *dom.Element    { return dom.New("thead", args...) }
func Tbody(args ...any) *dom.Element    { return dom.New("tbody", args...) }
func Tfoot(args ...any) *dom.Element    { return dom.New("tfoot", args...) }
func Tr(args ...any) *dom.Element       { return dom.New("tr", args...) }
func Th(args ...any) *dom.Element       { return dom.New("th", args...) }
func Td(args ...any) *dom.Element       { return dom.New("td", args...) }

// Forms

func Form(args ...any) *dom.Element     { return dom.New("form", args...) }
func Label(args ...any) *dom.Element    { return dom.New("label", args...) }
func Input(args ...any) *dom.Element    { return dom.New("input", args...) }
func Button(args ...any) *dom.Element   { return dom.New("button", args...) }
func Select(args ...any) *dom.Element   { return dom.New("select", args...) }
func Datalist(args ...any) *dom.Element { return dom.New("datalist", args...) }
func Optgroup(args ...any) *dom.Element { return dom.New("optgroup", args...) }
func Option(args ...any) *dom.Element   { return dom.New("option", args...) }
func Textarea(args ...any) *dom.Element { return dom.New("textarea", args...) }
func Output(args ...any) *dom.Element   { return dom.New("output", args...) }
func Progress(args ...any) *dom.Element { return dom.New("progress", args...) }
func Meter(args ...any) *dom.Element    { return dom.New("meter", args...) }
func Fieldset(args ...any) *dom.Element { return dom.New("fieldset", args...) }
func Legend(args ...any) *dom.Element   { return dom.New("legend", args...) }

// Interactive elements

func Details(args ...any) *dom.Element { return dom.New("details", args...) }
func Summary(args ...any) *dom.Element { return dom.New("summary", args...) }
func Dialog(args ...any) *dom.Element  { return dom.New("dialog", args...) }
