package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter user name (email)", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.signup(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Datasets(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter user name (email)", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.token(ctx, email, string(password))
	if err != nil {
		return err
	}

	list, err := a.listDatasets(ctx, token)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No datasets.")
		return nil
	}

	for _, d := range list {
		fmt.Fprintf(a.out, "%s  %s  rows=%d cols=%d size=%d uploaded=%s\n",
			d.ID, d.Filename, d.RowCount, d.ColumnCount, d.FileSize, d.UploadDate)
	}
	return nil
}

func (a *App) Health(ctx context.Context) error {
	status, err := a.health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, status)
	return nil
}
