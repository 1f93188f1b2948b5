package cli

import (
	"context"

	"github.com/dmitrijs2005/hrverify/internal/client/forms"
)

func (a *App) accountCommands() []Command {
	return []Command{
		{Name: "profile", Help: "show your profile", Run: a.cmdAccountProfile},
		{Name: "edit", Help: "update name, email or phone", Run: a.cmdAccountEdit},
		{Name: "password", Help: "change your password", Run: a.cmdAccountPassword},
		{Name: "upload", Usage: "<file> [image]", Help: "upload a document or image", Run: a.cmdAccountUpload},
	}
}

func (a *App) loadAccount(ctx context.Context) error {
	if err := a.account.Load(ctx); err != nil {
		return err
	}
	a.showProfile()
	return nil
}

func (a *App) showProfile() {
	p := a.account.Profile
	if p == nil {
		return
	}
	a.table([]string{"FIELD", "VALUE"}, [][]string{
		{"Name", p.FullName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Role", string(p.Role)},
	})
}

func (a *App) cmdAccountProfile(ctx context.Context, _ []string) error {
	return a.loadAccount(ctx)
}

func (a *App) cmdAccountEdit(ctx context.Context, _ []string) error {
	var in forms.ProfileInput
	if p := a.account.Profile; p != nil {
		in = forms.ProfileInput{FullName: p.FullName, Email: p.Email, Phone: p.Phone}
	}

	var err error
	if in.FullName, err = a.ask("Full name", in.FullName); err != nil {
		return err
	}
	if in.Email, err = a.ask("Email", in.Email); err != nil {
		return err
	}
	if in.Phone, err = a.ask("Phone", in.Phone); err != nil {
		return err
	}

	if _, err := a.account.UpdateProfile(ctx, in); err != nil {
		return err
	}
	a.success("Profile updated.")
	a.showProfile()
	return nil
}

func (a *App) cmdAccountPassword(ctx context.Context, _ []string) error {
	var in forms.PasswordChangeInput
	var err error
	if in.CurrentPassword, err = a.askSecret("Current password"); err != nil {
		return err
	}
	if in.NewPassword, err = a.askSecret("New password"); err != nil {
		return err
	}
	if err := a.account.ChangePassword(ctx, in); err != nil {
		return err
	}
	a.success("Password changed.")
	return nil
}

func (a *App) cmdAccountUpload(ctx context.Context, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	image := len(args) > 1 && args[1] == "image"

	res, err := a.account.Upload(ctx, path, image)
	if err != nil {
		return err
	}
	a.success("Uploaded: " + res.Path)
	if res.URL != "" {
		a.info(res.URL)
	}
	return nil
}
