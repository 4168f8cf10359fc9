// Command apiroutes extracts API routes from router.go and generates docs/API.md.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"
)

var quiet = flag.Bool("q", false, "quiet mode")

type route struct {
	Method  string
	Path    string
	Handler string
}

func main() {
	flag.Parse()
	// Paths relative to internal/server/ where go:generate runs.
	routerPath := "router.go"

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, routerPath, nil, parser.ParseComments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	var routes []route

	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if sel.Sel.Name != "Handle" && sel.Sel.Name != "HandleFunc" {
			return true
		}
		if len(call.Args) < 2 {
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		pattern := strings.Trim(lit.Value, `"`)
		method, path := parsePattern(pattern)
		handler := parseHandler(call.Args[1])

		routes = append(routes, route{
			Method:  method,
			Path:    path,
			Handler: handler,
		})
		return true
	})

	// Sort by path, then method
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	// Group routes by prefix
	groups := groupRoutes(routes)

	outPath := "../../docs/API.md"
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create file: %v\n", err)
		os.Exit(1)
	}
	if err := writeMarkdown(out, groups); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated docs/API.md with %d routes\n", len(routes))
	}
}

func parsePattern(p string) (method, path string) {
	parts := strings.SplitN(p, " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "*", parts[0]
}

func parseHandler(expr ast.Expr) string {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return exprName(expr)
	}

	switch exprName(call.Fun) {
	case "Wrap", "WrapCreated", "WrapNoContent":
		if len(call.Args) >= 1 {
			return exprName(call.Args[0])
		}
	}
	return exprName(call.Fun)
}

func exprName(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		return exprName(v.X) + "." + v.Sel.Name
	case *ast.CallExpr:
		return exprName(v.Fun)
	}
	return "?"
}

type routeGroup struct {
	Name   string
	Routes []route
}

func groupRoutes(routes []route) []routeGroup {
	order := []string{"Health", "Books", "Schema"}
	groups := make(map[string][]route)

	for _, r := range routes {
		name := categorize(r.Path)
		groups[name] = append(groups[name], r)
	}

	var result []routeGroup
	for _, name := range order {
		if rs, ok := groups[name]; ok {
			result = append(result, routeGroup{Name: name, Routes: rs})
			delete(groups, name)
		}
	}
	// Any remaining
	for name, rs := range groups {
		result = append(result, routeGroup{Name: name, Routes: rs})
	}
	return result
}

func categorize(path string) string {
	switch {
	case path == "/health":
		return "Health"
	case path == "/schema":
		return "Schema"
	case path == "/":
		return "Fallback"
	case strings.HasPrefix(path, "/books"):
		return "Books"
	default:
		return "Other"
	}
}

func writeMarkdown(out *os.File, groups []routeGroup) error {
	lines := []string{
		"# bookdb API Reference",
		"",
		"<!-- Code generated by go generate; DO NOT EDIT. -->",
		"",
		"RESTful JSON API for bookdb. All endpoints are unauthenticated.",
		"",
		"Errors are JSON objects with a machine-readable `error.code` and a",
		"human-readable `error.message`.",
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	for _, g := range groups {
		if g.Name == "Fallback" {
			continue
		}
		if _, err := fmt.Fprintf(out, "## %s\n\n", g.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, "| Method | Path | Handler |"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, "|--------|------|---------|"); err != nil {
			return err
		}
		for _, r := range g.Routes {
			if _, err := fmt.Fprintf(out, "| %s | `%s` | %s |\n", r.Method, r.Path, r.Handler); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}
