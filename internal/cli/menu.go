// Package cli is the interactive command surface of the register. It owns
// prompting, input coercion and display formatting; every action is a single
// call into the service layer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"assetreg/internal/domain"
	"assetreg/internal/service"
)

// Command identifies one menu action.
type Command int

const (
	CmdUnknown Command = iota
	CmdAddLocation
	CmdAddAsset
	CmdListAssets
	CmdSearchAssets
	CmdReport
	CmdExit
)

// ParseCommand maps a menu selection to a Command. Anything outside 1-6 is
// CmdUnknown.
func ParseCommand(s string) Command {
	switch s {
	case "1":
		return CmdAddLocation
	case "2":
		return CmdAddAsset
	case "3":
		return CmdListAssets
	case "4":
		return CmdSearchAssets
	case "5":
		return CmdReport
	case "6":
		return CmdExit
	default:
		return CmdUnknown
	}
}

type Menu struct {
	service *service.RegisterService
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

func New(svc *service.RegisterService, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		service: svc,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops the main menu until the user exits or input ends. Invalid
// selections re-prompt; storage failures propagate to the caller.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nAsset Register System")
		fmt.Fprintln(m.out, "---------------------")
		fmt.Fprintln(m.out, "1. Add New Location")
		fmt.Fprintln(m.out, "2. Add New Asset")
		fmt.Fprintln(m.out, "3. View All Assets")
		fmt.Fprintln(m.out, "4. Search Assets")
		fmt.Fprintln(m.out, "5. Generate Report")
		fmt.Fprintln(m.out, "6. Exit")

		choice, ok := m.prompt("\nEnter your choice (1-6): ")
		if !ok {
			return nil
		}

		cmd := ParseCommand(choice)
		if cmd == CmdUnknown {
			fmt.Fprintln(m.out, "\nInvalid choice. Please enter a number between 1 and 6.")
			continue
		}
		if cmd == CmdExit {
			fmt.Fprintln(m.out, "\nExiting the system. Goodbye!")
			return nil
		}

		if err := m.Dispatch(ctx, cmd); err != nil {
			return err
		}
	}
}

// Dispatch runs a single command against the service. Validation failures
// are reported to the user and return nil; only storage-layer failures
// return an error.
func (m *Menu) Dispatch(ctx context.Context, cmd Command) error {
	m.logger.Debug("dispatching command", "command", int(cmd))
	switch cmd {
	case CmdAddLocation:
		return m.addLocation(ctx)
	case CmdAddAsset:
		return m.addAsset(ctx)
	case CmdListAssets:
		return m.listAssets(ctx)
	case CmdSearchAssets:
		return m.searchAssets(ctx)
	case CmdReport:
		return m.report(ctx)
	case CmdExit:
		return nil
	default:
		return fmt.Errorf("unknown command %d", cmd)
	}
}

// prompt prints a label and reads one trimmed line. ok is false once input
// is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) addLocation(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nAdd New Location")
	fmt.Fprintln(m.out, "----------------")

	name, _ := m.prompt("Location Name: ")
	address, _ := m.prompt("Address: ")
	contactPerson, _ := m.prompt("Contact Person: ")
	contactPhone, _ := m.prompt("Contact Phone: ")

	loc, err := m.service.AddLocation(ctx, name, address, contactPerson, contactPhone)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\nLocation '%s' added successfully!\n", loc.Name)
	return nil
}

func (m *Menu) addAsset(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nAdd New Asset")
	fmt.Fprintln(m.out, "-------------")

	locations, err := m.service.ListLocations(ctx)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		fmt.Fprintln(m.out, "No locations found. Please add a location first.")
		return nil
	}

	fmt.Fprintln(m.out, "\nAvailable Locations:")
	for _, loc := range locations {
		fmt.Fprintf(m.out, "%d. %s\n", loc.ID, loc.Name)
	}

	idText, _ := m.prompt("\nSelect Location ID: ")
	locationID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a number.")
		return nil
	}

	in := service.AssetInput{LocationID: locationID}
	in.Name, _ = m.prompt("Asset Name: ")
	in.Description, _ = m.prompt("Description: ")
	in.PurchaseDate, _ = m.prompt("Purchase Date (YYYY-MM-DD, leave empty if unknown): ")
	in.PurchasePrice, _ = m.prompt("Purchase Price (leave empty if unknown): ")
	in.SerialNumber, _ = m.prompt("Serial Number: ")
	in.Category, _ = m.prompt("Category (e.g., Furniture, Equipment, Vehicle): ")
	in.Condition, _ = m.prompt("Condition (e.g., New, Good, Fair, Poor): ")
	in.LastMaintenanceDate, _ = m.prompt("Last Maintenance Date (YYYY-MM-DD, leave empty if none): ")

	asset, locationName, err := m.service.AddAsset(ctx, in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(m.out, "%s\n", verr.Msg)
			return nil
		}
		return err
	}

	fmt.Fprintf(m.out, "\nAsset '%s' added to %s successfully!\n", asset.Name, locationName)
	return nil
}

func (m *Menu) listAssets(ctx context.Context) error {
	assets, err := m.service.ListAssets(ctx)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintln(m.out, "\nNo assets found in the register.")
		return nil
	}

	fmt.Fprintln(m.out, "\nAsset Register")
	fmt.Fprintln(m.out, "--------------")
	m.printGrouped(assets)
	return nil
}

func (m *Menu) searchAssets(ctx context.Context) error {
	term, _ := m.prompt("\nEnter search term: ")
	if term == "" {
		fmt.Fprintln(m.out, "Please enter a search term.")
		return nil
	}

	assets, err := m.service.SearchAssets(ctx, term)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintln(m.out, "\nNo assets found matching your search.")
		return nil
	}

	fmt.Fprintf(m.out, "\nSearch Results for '%s'\n", term)
	fmt.Fprintln(m.out, "--------------------------------")
	for _, a := range assets {
		fmt.Fprintf(m.out, "Location: %s\n", a.LocationName)
		m.printAsset(a)
	}
	return nil
}

func (m *Menu) report(ctx context.Context) error {
	rep, err := m.service.GenerateReport(ctx)
	if err != nil {
		return err
	}
	if len(rep.Locations) == 0 {
		fmt.Fprintln(m.out, "\nNo locations found in the register.")
		return nil
	}

	fmt.Fprintln(m.out, "\nAsset Report")
	fmt.Fprintln(m.out, "------------")
	fmt.Fprintf(m.out, "Generated on: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))

	for _, loc := range rep.Locations {
		fmt.Fprintf(m.out, "\nLocation: %s\n", loc.Name)
		fmt.Fprintf(m.out, "Total Assets: %d\n", loc.AssetCount)

		for _, a := range loc.Assets {
			fmt.Fprintf(m.out, " - %s (%s)\n", a.Name, a.Category)
			fmt.Fprintf(m.out, "   Condition: %s\n", a.Condition)
			switch {
			case a.PurchaseDate != nil && a.PurchasePrice != nil:
				fmt.Fprintf(m.out, "   Purchased: %s for $%.2f\n", *a.PurchaseDate, *a.PurchasePrice)
			case a.PurchaseDate != nil:
				fmt.Fprintf(m.out, "   Purchased: %s\n", *a.PurchaseDate)
			}
		}
	}

	fmt.Fprintf(m.out, "\nTotal Assets Across All Locations: %d\n", rep.TotalAssets)
	return nil
}

// printGrouped renders asset views under a header per location. Views arrive
// sorted by location name, so a change in name starts a new group.
func (m *Menu) printGrouped(assets []*domain.AssetView) {
	currentLocation := ""
	for _, a := range assets {
		if a.LocationName != currentLocation {
			currentLocation = a.LocationName
			fmt.Fprintf(m.out, "\nLocation: %s\n", currentLocation)
			fmt.Fprintln(m.out, strings.Repeat("-", 10+len(currentLocation)))
		}
		m.printAsset(a)
	}
}

func (m *Menu) printAsset(a *domain.AssetView) {
	fmt.Fprintf(m.out, "ID: %d, Name: %s\n", a.AssetID, a.Name)
	fmt.Fprintf(m.out, "   Description: %s\n", a.Description)
	fmt.Fprintf(m.out, "   Category: %s, Condition: %s\n\n", a.Category, a.Condition)
}
