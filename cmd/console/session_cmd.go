package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tesoreria-console/internal/application/dto"
)

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var userName, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión y guarda token y usuario en el almacenamiento local",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Contraseña: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("leer contraseña: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			rt, err := newRuntime(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			user, err := rt.authUseCase().Login(cmd.Context(), dto.LoginRequest{UserName: userName, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido %s\n", user.NombreCompleto)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userName, "user", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si se omite se pide por la entrada estándar)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newLogoutCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Borra token, usuario y accesos del almacenamiento local",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.authUseCase().Logout(cmd.Context(), ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la identidad guardada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			me := rt.authUseCase().Me()
			out := cmd.OutOrStdout()
			if !me.Authenticated {
				fmt.Fprintf(out, "%s (sin sesión vigente)\n", me.User.NombreCompleto)
				return nil
			}
			rol := "-"
			if me.User.Rol != nil {
				rol = me.User.Rol.Nombre
			}
			fmt.Fprintf(out, "%s <%s> usuario=%s rol=%s\n", me.User.NombreCompleto, me.User.Correo, me.User.UserName, rol)
			return nil
		},
	}
}
