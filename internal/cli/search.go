package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

type searchOptions struct {
	cuisine      string
	maxReadyTime string
	offset       int
	number       int
	asJSON       bool
}

// NewSearchCommand builds the "search" command.
func NewSearchCommand(root *RootCommand) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search recipes from the terminal",
		Example: `  recipe-finder search pasta
  recipe-finder search --cuisine Thai --max-ready-time 30
  recipe-finder search chicken --offset 20 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, strings.Join(args, " "), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.cuisine, "cuisine", "c", "", "Cuisine filter, e.g. Italian")
	flags.StringVarP(&opts.maxReadyTime, "max-ready-time", "t", "", "Maximum ready time in minutes")
	flags.IntVar(&opts.offset, "offset", 0, "Number of results to skip")
	flags.IntVarP(&opts.number, "number", "n", 0, "Results per page (default from $PAGE_SIZE)")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the raw result page as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, root *RootCommand, query string, opts searchOptions) error {
	cfg := root.Config()
	form := service.ParseSearchForm(query, opts.cuisine, opts.maxReadyTime)
	if form.IsEmpty() {
		return fmt.Errorf("enter search criteria: a query, --cuisine or --max-ready-time")
	}

	ctx := cmd.Context()
	responseCache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	client := spoonacular.NewClient(cfg.EnvVars.SpoonacularAPIKey, cfg.EnvVars.SpoonacularURL, cfg.EnvVars.RequestTimeout)
	svc := service.NewSearchService(cfg, spoonacular.NewCachingProvider(client, responseCache))

	page, err := svc.SearchPage(ctx, form, opts.offset, opts.number)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
	return printPage(out, form, page)
}

func printPage(out io.Writer, form service.SearchForm, page *models.ResultPage) error {
	if len(page.Results) == 0 {
		_, err := fmt.Fprintln(out, "No recipes found.")
		return err
	}

	fmt.Fprintf(out, "Results for %s\n", strings.Join(form.Criteria(), ", "))
	fmt.Fprintf(out, "Showing %d-%d of %d recipes\n\n", page.Offset+1, page.Offset+len(page.Results), page.TotalResults)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tMINUTES\tCUISINES")
	for _, r := range page.Results {
		minutes := "-"
		if r.ReadyInMinutes != nil {
			minutes = fmt.Sprint(*r.ReadyInMinutes)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Title, minutes, strings.Join(r.Cuisines, ", "))
	}
	return tw.Flush()
}
