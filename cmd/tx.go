package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

// txFlags is the shared flag surface of the add and edit commands.
type txFlags struct {
	notebook string
	date     string
	item     string
	typ      string
	category string
	amount   string
	mode     string
	desc     string
	comments string
}

func (c *txFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
	f.StringVar(&c.date, "date", "", "Transaction date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&c.item, "item", "", "What the money was for")
	f.StringVar(&c.typ, "type", string(trackit.Expenditure), "Expenditure or Earning")
	f.StringVar(&c.category, "category", "", "Category (see 'track topic transactions')")
	f.StringVar(&c.amount, "amount", "", "Amount (unparsable or negative records as 0)")
	f.StringVar(&c.mode, "mode", "", "Payment mode (Cash, UPI, Card, ...)")
	f.StringVar(&c.desc, "description", "", "Longer description")
	f.StringVar(&c.comments, "comments", "", "Free-form comments")
}

func (c *txFlags) form() (trackit.TransactionForm, error) {
	typ, err := trackit.ParseTransactionType(c.typ)
	if err != nil {
		return trackit.TransactionForm{}, err
	}
	date := c.date
	if date == "" {
		date = trackit.Today().String()
	}
	return trackit.TransactionForm{
		Date:        date,
		Item:        c.item,
		Type:        typ,
		Category:    trackit.Category(c.category),
		Amount:      c.amount,
		PaymentMode: c.mode,
		Description: c.desc,
		Comments:    c.comments,
	}, nil
}

// --- Add Command ---

type addCmd struct {
	txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in a notebook" }
func (*addCmd) Usage() string {
	return `track add -notebook <id|name> -item <item> -amount <amount> [-type Expenditure|Earning]
          [-date <YYYY-MM-DD>] [-category <category>] [-mode <mode>]
          [-description <text>] [-comments <text>]

  Records an expenditure or earning. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.notebook == "" || c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	form, err := c.form()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	nb, err := findNotebook(collection, c.notebook)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	nb = nb.AddTransaction(form)
	collection = trackit.UpdateNotebook(collection, nb)
	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	added := nb.Transactions[len(nb.Transactions)-1]
	fmt.Printf("Recorded %s %q of %s%s in %q (%s)\n",
		added.Type, added.Item, nb.Currency, added.Amount, nb.Name, added.ID)
	return subcommands.ExitSuccess
}

// --- Edit Command ---

type editCmd struct {
	txFlags
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `track edit -notebook <id|name> -id <transaction-id> [field flags...]

  Changes only the fields you pass; everything else keeps its current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.id, "id", "", "Transaction id to edit")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.notebook == "" || c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	nb, err := findNotebook(collection, c.notebook)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, ok := nb.FindTransaction(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "no transaction %q in notebook %q\n", c.id, nb.Name)
		return subcommands.ExitFailure
	}

	// Start from the current values, then overlay the flags that were
	// explicitly set on the command line.
	form := trackit.TransactionForm{
		Date:        tx.Date.String(),
		Item:        tx.Item,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount.String(),
		PaymentMode: tx.PaymentMode,
		Description: tx.Description,
		Comments:    tx.Comments,
	}
	var badType error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			form.Date = c.date
		case "item":
			form.Item = c.item
		case "type":
			typ, err := trackit.ParseTransactionType(c.typ)
			if err != nil {
				badType = err
				return
			}
			form.Type = typ
		case "category":
			form.Category = trackit.Category(c.category)
		case "amount":
			form.Amount = c.amount
		case "mode":
			form.PaymentMode = c.mode
		case "description":
			form.Description = c.desc
		case "comments":
			form.Comments = c.comments
		}
	})
	if badType != nil {
		fmt.Fprintln(os.Stderr, badType)
		return subcommands.ExitUsageError
	}

	nb = nb.EditTransaction(c.id, form)
	collection = trackit.UpdateNotebook(collection, nb)
	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated transaction %s in %q\n", c.id, nb.Name)
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type rmCmd struct {
	notebook string
	id       string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `track rm -notebook <id|name> -id <transaction-id>

  Deletes a single transaction from a notebook.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
	f.StringVar(&c.id, "id", "", "Transaction id to delete")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.notebook == "" || c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	nb, err := findNotebook(collection, c.notebook)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, ok := nb.FindTransaction(c.id); !ok {
		fmt.Fprintf(os.Stderr, "no transaction %q in notebook %q\n", c.id, nb.Name)
		return subcommands.ExitFailure
	}

	nb = nb.DeleteTransaction(c.id)
	collection = trackit.UpdateNotebook(collection, nb)
	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted transaction %s from %q\n", c.id, nb.Name)
	return subcommands.ExitSuccess
}
